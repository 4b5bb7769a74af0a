package diffseq

import (
	"math/rand/v2"
	"reflect"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
)

func TestDiff_Empty(t *testing.T) {
	tests := []struct {
		name string
		a, b []string
		want []DiffOp
	}{
		{
			name: "both empty",
			a:    []string{},
			b:    []string{},
			want: nil,
		},
		{
			name: "a empty",
			a:    []string{},
			b:    []string{"x", "y"},
			want: []DiffOp{
				{Type: Insert, AStart: 0, AEnd: 0, BStart: 0, BEnd: 2},
			},
		},
		{
			name: "b empty",
			a:    []string{"x", "y"},
			b:    []string{},
			want: []DiffOp{
				{Type: Delete, AStart: 0, AEnd: 2, BStart: 0, BEnd: 0},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Diff(tt.a, tt.b, WithPreprocessing(false), WithPostprocessing(false))
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Diff() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDiff_Equal(t *testing.T) {
	a := []string{"a", "b", "c"}
	b := []string{"a", "b", "c"}

	got := Diff(a, b)
	want := []DiffOp{
		{Type: Equal, AStart: 0, AEnd: 3, BStart: 0, BEnd: 3},
	}

	if !reflect.DeepEqual(got, want) {
		t.Errorf("Diff() = %v, want %v", got, want)
	}
}

func TestDiff_AllDifferent(t *testing.T) {
	a := []string{"a", "b", "c"}
	b := []string{"x", "y", "z"}

	got := Diff(a, b, WithPreprocessing(false), WithPostprocessing(false))
	want := []DiffOp{
		{Type: Delete, AStart: 0, AEnd: 3, BStart: 0, BEnd: 0},
		{Type: Insert, AStart: 3, AEnd: 3, BStart: 0, BEnd: 3},
	}

	if !reflect.DeepEqual(got, want) {
		t.Errorf("Diff() = %v, want %v", got, want)
	}
}

func TestDiff_SimpleChange(t *testing.T) {
	a := []string{"a", "b", "c"}
	b := []string{"a", "x", "c"}

	got := Diff(a, b, WithPreprocessing(false), WithPostprocessing(false))
	want := []DiffOp{
		{Type: Equal, AStart: 0, AEnd: 1, BStart: 0, BEnd: 1},
		{Type: Delete, AStart: 1, AEnd: 2, BStart: 1, BEnd: 1},
		{Type: Insert, AStart: 2, AEnd: 2, BStart: 1, BEnd: 2},
		{Type: Equal, AStart: 2, AEnd: 3, BStart: 2, BEnd: 3},
	}

	if !reflect.DeepEqual(got, want) {
		t.Errorf("Diff() = %v, want %v", got, want)
	}
}

func TestDiff_Insert(t *testing.T) {
	a := []string{"a", "c"}
	b := []string{"a", "b", "c"}

	got := Diff(a, b, WithPreprocessing(false), WithPostprocessing(false))
	want := []DiffOp{
		{Type: Equal, AStart: 0, AEnd: 1, BStart: 0, BEnd: 1},
		{Type: Insert, AStart: 1, AEnd: 1, BStart: 1, BEnd: 2},
		{Type: Equal, AStart: 1, AEnd: 2, BStart: 2, BEnd: 3},
	}

	if !reflect.DeepEqual(got, want) {
		t.Errorf("Diff() = %v, want %v", got, want)
	}
}

func TestDiff_Delete(t *testing.T) {
	a := []string{"a", "b", "c"}
	b := []string{"a", "c"}

	got := Diff(a, b, WithPreprocessing(false), WithPostprocessing(false))
	want := []DiffOp{
		{Type: Equal, AStart: 0, AEnd: 1, BStart: 0, BEnd: 1},
		{Type: Delete, AStart: 1, AEnd: 2, BStart: 1, BEnd: 1},
		{Type: Equal, AStart: 2, AEnd: 3, BStart: 1, BEnd: 2},
	}

	if !reflect.DeepEqual(got, want) {
		t.Errorf("Diff() = %v, want %v", got, want)
	}
}

func TestDiff_ApplyProducesB(t *testing.T) {
	// Property test: applying the diff to A should produce B
	tests := []struct {
		name string
		a, b []string
	}{
		{"simple", []string{"a", "b", "c"}, []string{"a", "x", "c"}},
		{"insert", []string{"a", "c"}, []string{"a", "b", "c"}},
		{"delete", []string{"a", "b", "c"}, []string{"a", "c"}},
		{"replace all", []string{"a", "b"}, []string{"x", "y"}},
		{"complex", []string{"a", "b", "c", "d", "e"}, []string{"a", "x", "c", "y", "e"}},
		{"repeated", []string{"x", "x", "x"}, []string{"x", "y", "x", "x"}},
		{"blank lines", []string{"a", "", "b", "", "c"}, []string{"a", "", "c"}},
	}

	configs := []struct {
		name string
		opts []Option
	}{
		{"plain", []Option{WithPreprocessing(false), WithPostprocessing(false)}},
		{"preprocessing", []Option{WithPostprocessing(false)}},
		{"postprocessing", []Option{WithPreprocessing(false)}},
		{"default", nil},
	}

	for _, tt := range tests {
		for _, cfg := range configs {
			t.Run(tt.name+"/"+cfg.name, func(t *testing.T) {
				ops := Diff(tt.a, tt.b, cfg.opts...)
				checkOps(t, tt.a, tt.b, ops)
			})
		}
	}
}

// applyDiff applies a diff to sequence a to produce b
func applyDiff(a, b []string, ops []DiffOp) []string {
	var result []string

	for _, op := range ops {
		switch op.Type {
		case Equal:
			result = append(result, a[op.AStart:op.AEnd]...)
		case Delete:
			// Don't add deleted elements
		case Insert:
			result = append(result, b[op.BStart:op.BEnd]...)
		}
	}

	return result
}

// checkOps verifies that ops cover both sequences in order, that Equal
// ranges really are equal, and that applying them to a yields b.
func checkOps(t *testing.T, a, b []string, ops []DiffOp) {
	t.Helper()
	i, j := 0, 0
	for _, op := range ops {
		if op.AStart != i || op.BStart != j {
			t.Fatalf("op %v does not start at (%d, %d): %v", op, i, j, ops)
		}
		switch op.Type {
		case Equal:
			if !reflect.DeepEqual(a[op.AStart:op.AEnd], b[op.BStart:op.BEnd]) {
				t.Errorf("Equal op %v covers different elements", op)
			}
		case Delete:
			if op.BStart != op.BEnd {
				t.Errorf("Delete op %v has a B range", op)
			}
		case Insert:
			if op.AStart != op.AEnd {
				t.Errorf("Insert op %v has an A range", op)
			}
		}
		i, j = op.AEnd, op.BEnd
	}
	if i != len(a) || j != len(b) {
		t.Errorf("ops end at (%d, %d), want (%d, %d): %v", i, j, len(a), len(b), ops)
	}
	if got := applyDiff(a, b, ops); !reflect.DeepEqual(got, b) && len(b) > 0 {
		t.Errorf("Applying diff to %v did not produce %v, got %v\nOps: %v", a, b, got, ops)
	}
}

// editCount returns the number of deleted and inserted elements.
func editCount(ops []DiffOp) int {
	n := 0
	for _, op := range ops {
		if op.Type != Equal {
			n += (op.AEnd - op.AStart) + (op.BEnd - op.BStart)
		}
	}
	return n
}

func TestOpType_String(t *testing.T) {
	tests := []struct {
		op   OpType
		want string
	}{
		{Equal, "Equal"},
		{Insert, "Insert"},
		{Delete, "Delete"},
		{OpType(99), "Unknown"},
	}

	for _, tt := range tests {
		if got := tt.op.String(); got != tt.want {
			t.Errorf("OpType(%d).String() = %q, want %q", tt.op, got, tt.want)
		}
	}
}

func TestDiff_LargerSequences(t *testing.T) {
	a := make([]string, 100)
	b := make([]string, 100)

	for i := 0; i < 100; i++ {
		a[i] = string(rune('a' + (i % 26)))
		b[i] = string(rune('a' + (i % 26)))
	}

	b[10] = "X"
	b[50] = "Y"
	b[90] = "Z"

	ops := Diff(a, b, WithPreprocessing(false), WithPostprocessing(false))
	checkOps(t, a, b, ops)

	if got := editCount(ops); got != 6 {
		t.Errorf("expected 6 edits for 3 replacements, got %d: %v", got, ops)
	}
}

func TestDiff_Minimal(t *testing.T) {
	// Without preprocessing the script is a shortest edit script, so its
	// length follows from the longest common subsequence.
	rnd := rand.New(rand.NewPCG(7, 8))
	words := []string{"the", "a", "fox", "dog", "", "jumps", "over"}
	for i := 0; i < 200; i++ {
		a := make([]string, rnd.IntN(30))
		b := make([]string, rnd.IntN(30))
		for k := range a {
			a[k] = words[rnd.IntN(len(words))]
		}
		for k := range b {
			b[k] = words[rnd.IntN(len(words))]
		}

		ops := Diff(a, b, WithPreprocessing(false))
		checkOps(t, a, b, ops)

		lcs := lcsLength(joinWords(a), joinWords(b))
		if want := len(a) + len(b) - 2*lcs; editCount(ops) != want {
			t.Fatalf("a=%q b=%q: %d edits, want %d: %v", a, b, editCount(ops), want, ops)
		}
	}
}

// joinWords maps each word to a single byte so that lcsLength can be used
// on word sequences.
func joinWords(words []string) string {
	ids := map[string]byte{"the": 'a', "a": 'b', "fox": 'c', "dog": 'd', "": 'e', "jumps": 'f', "over": 'g'}
	var sb strings.Builder
	for _, w := range words {
		sb.WriteByte(ids[w])
	}
	return sb.String()
}

func TestDiff_FoxExample(t *testing.T) {
	old := []string{"The", "quick", "brown", "fox", "jumps"}
	new := []string{"A", "slow", "red", "fox", "leaps"}

	ops := Diff(old, new)
	checkOps(t, old, new, ops)

	// Check that "fox" is preserved (appears in an Equal operation)
	foxPreserved := false
	for _, op := range ops {
		if op.Type == Equal {
			for i := op.AStart; i < op.AEnd; i++ {
				if old[i] == "fox" {
					foxPreserved = true
				}
			}
		}
	}

	if !foxPreserved {
		t.Error("Expected 'fox' to be preserved in an Equal operation")
	}
}

func TestDiff_PathologicalCase(t *testing.T) {
	// All elements are the same, so there are many possible alignments
	a := make([]string, 50)
	b := make([]string, 50)

	for i := 0; i < 50; i++ {
		a[i] = "x"
		b[i] = "x"
	}
	b[25] = "y"

	ops := Diff(a, b)
	checkOps(t, a, b, ops)
}

func TestDiff_ShiftsAfterPunctuation(t *testing.T) {
	// The inserted block can be B[2:4] or B[1:3]. The latter starts right
	// after the line ending a sentence.
	a := []string{"end.", "k", "z"}
	b := []string{"end.", "k", "m", "k", "z"}

	plain := Diff(a, b, WithPreprocessing(false), WithPostprocessing(false))
	checkOps(t, a, b, plain)
	wantPlain := []DiffOp{
		{Type: Equal, AStart: 0, AEnd: 2, BStart: 0, BEnd: 2},
		{Type: Insert, AStart: 2, AEnd: 2, BStart: 2, BEnd: 4},
		{Type: Equal, AStart: 2, AEnd: 3, BStart: 4, BEnd: 5},
	}
	if !reflect.DeepEqual(plain, wantPlain) {
		t.Errorf("Diff() = %v, want %v", plain, wantPlain)
	}

	got := Diff(a, b, WithPreprocessing(false))
	checkOps(t, a, b, got)
	want := []DiffOp{
		{Type: Equal, AStart: 0, AEnd: 1, BStart: 0, BEnd: 1},
		{Type: Insert, AStart: 1, AEnd: 1, BStart: 1, BEnd: 3},
		{Type: Equal, AStart: 1, AEnd: 3, BStart: 3, BEnd: 5},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Diff() = %v, want %v", got, want)
	}
}

func TestDiff_WithLogger(t *testing.T) {
	logger, hook := test.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)

	a := []string{"p", "q", "r", "s", "common"}
	b := []string{"u", "v", "w", "z", "common"}

	ops := Diff(a, b, WithLogger(logger))
	checkOps(t, a, b, ops)

	want := []DiffOp{
		{Type: Delete, AStart: 0, AEnd: 4, BStart: 0, BEnd: 0},
		{Type: Insert, AStart: 4, AEnd: 4, BStart: 0, BEnd: 4},
		{Type: Equal, AStart: 4, AEnd: 5, BStart: 4, BEnd: 5},
	}
	if !reflect.DeepEqual(ops, want) {
		t.Errorf("Diff() = %v, want %v", ops, want)
	}

	entry := hook.LastEntry()
	if entry == nil {
		t.Fatal("expected a log entry")
	}
	if entry.Message != "diffseq: filtered confusing elements" {
		t.Errorf("unexpected message %q", entry.Message)
	}
	if got := entry.Data["aFiltered"]; got != 1 {
		t.Errorf("aFiltered = %v, want 1", got)
	}
}

func TestWithLogger_Nil(t *testing.T) {
	o := defaultOptions()
	WithLogger(nil)(o)
	if o.logger == nil {
		t.Error("nil logger should keep the default")
	}
}

// Benchmark tests
func BenchmarkDiff_Small(b *testing.B) {
	a := []string{"a", "b", "c", "d", "e"}
	bSeq := []string{"a", "x", "c", "y", "e"}

	for i := 0; i < b.N; i++ {
		Diff(a, bSeq)
	}
}

func BenchmarkDiff_Medium(b *testing.B) {
	a := make([]string, 100)
	bSeq := make([]string, 100)

	for i := 0; i < 100; i++ {
		a[i] = string(rune('a' + (i % 26)))
		bSeq[i] = string(rune('a' + (i % 26)))
	}
	bSeq[10] = "X"
	bSeq[50] = "Y"
	bSeq[90] = "Z"

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Diff(a, bSeq)
	}
}

func BenchmarkDiff_Large(b *testing.B) {
	a := make([]string, 1000)
	bSeq := make([]string, 1000)

	for i := 0; i < 1000; i++ {
		a[i] = string(rune('a' + (i % 26)))
		bSeq[i] = string(rune('a' + (i % 26)))
	}
	for i := 0; i < 100; i++ {
		bSeq[i*10] = "X"
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Diff(a, bSeq)
	}
}
