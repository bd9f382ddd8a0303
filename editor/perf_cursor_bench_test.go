package editor

import (
	"fmt"
	"strings"
	"testing"
)

func BenchmarkCursorMove(b *testing.B) {
	for _, lines := range []int{100, 1000, 3000} {
		doc := benchmarkCursorDoc(lines)

		b.Run(fmt.Sprintf("vertical/lines=%d", lines), func(b *testing.B) {
			ta := New(Config{Text: doc, Width: 40, Height: 20, Multiline: true})
			ta.Relayout()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				if i%2 == 0 {
					ta.MoveDown(false)
				} else {
					ta.MoveUp(false)
				}
			}
		})
	}
}

func BenchmarkRelayout(b *testing.B) {
	for _, lines := range []int{100, 1000} {
		doc := benchmarkCursorDoc(lines)

		b.Run(fmt.Sprintf("edit/lines=%d", lines), func(b *testing.B) {
			ta := New(Config{Text: doc, Width: 40, Height: 20, Multiline: true})
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				ta.Insert("x")
				ta.Relayout()
			}
		})
	}
}

func benchmarkCursorDoc(lines int) string {
	var sb strings.Builder
	for i := 0; i < lines; i++ {
		if i > 0 {
			sb.WriteByte('\n')
		}
		fmt.Fprintf(&sb, "%04d the quick brown fox jumps over the lazy dog", i)
	}
	return sb.String()
}
