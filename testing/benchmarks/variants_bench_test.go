package benchmarks

import (
	"testing"

	"github.com/zoobzio/vessel/dispatch"
	"github.com/zoobzio/vessel/table"
	vesseltest "github.com/zoobzio/vessel/testing"
)

var sinkInt int

func BenchmarkNew_Dispatch(b *testing.B) {
	for i := 0; i < b.N; i++ {
		a := dispatch.New(i)
		a.Reset()
	}
}

func BenchmarkNew_Table(b *testing.B) {
	for i := 0; i < b.N; i++ {
		a := table.New(i)
		a.Reset()
	}
}

func BenchmarkClone_Dispatch(b *testing.B) {
	a := dispatch.New(vesseltest.Point{ID: 1, Name: "Alice"})

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		c := a.Clone()
		c.Reset()
	}
}

func BenchmarkClone_Table(b *testing.B) {
	a := table.New(vesseltest.Point{ID: 1, Name: "Alice"})

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		c := a.Clone()
		c.Reset()
	}
}

func BenchmarkClone_Cloner_Dispatch(b *testing.B) {
	a := dispatch.New(vesseltest.Bag{Items: []int{1, 2, 3, 4}})

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		c := a.Clone()
		c.Reset()
	}
}

func BenchmarkClone_Cloner_Table(b *testing.B) {
	a := table.New(vesseltest.Bag{Items: []int{1, 2, 3, 4}})

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		c := a.Clone()
		c.Reset()
	}
}

func BenchmarkExtract_Dispatch(b *testing.B) {
	a := dispatch.New(42)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		p, _ := dispatch.Extract[int](a)
		sinkInt += *p
	}
}

func BenchmarkExtract_Table(b *testing.B) {
	a := table.New(42)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		p, _ := table.Extract[int](a)
		sinkInt += *p
	}
}

func BenchmarkType_Dispatch(b *testing.B) {
	a := dispatch.New(42)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sinkInt += a.Type().ID()
	}
}

func BenchmarkType_Table(b *testing.B) {
	a := table.New(42)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sinkInt += a.Type().ID()
	}
}

func BenchmarkSwap_Dispatch(b *testing.B) {
	x, y := dispatch.New(1), dispatch.New("y")

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		x.Swap(y)
	}
}

func BenchmarkSwap_Table(b *testing.B) {
	x, y := table.New(1), table.New("y")

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		x.Swap(y)
	}
}
