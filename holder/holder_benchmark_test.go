package holder_test

import (
	"testing"

	"github.com/sghaida/poo/holder"
)

func BenchmarkNew(b *testing.B) {
	c := holder.NewCounter()

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = holder.New(c, i)
	}
}

func BenchmarkFromAny_Rejected(b *testing.B) {
	c := holder.NewCounter()

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = holder.FromAny(c, "bad")
	}
}

func BenchmarkSetGet(b *testing.B) {
	h := holder.New(holder.NewCounter(), 0)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		h.Set(i)
		_ = h.Get()
	}
}

func BenchmarkSetAny(b *testing.B) {
	h := holder.New(holder.NewCounter(), 0)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = h.SetAny(int64(i))
	}
}
