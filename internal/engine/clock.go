package engine

import "time"

// Clock: Motor içindeki tüm zaman okumaları bu arayüz üzerinden yapılır.
// Hazırlık süresi hesabı gerçek beklemeye gerek kalmadan test edilebilsin
// diye duvar saati dışarıdan verilir.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// SystemClock gerçek duvar saatini döndürür.
func SystemClock() Clock { return systemClock{} }
