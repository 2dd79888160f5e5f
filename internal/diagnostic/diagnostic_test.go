package diagnostic

import "testing"

func TestListAppendPreservesOrder(t *testing.T) {
	l := List[int]{1, 2}.Append(List[int]{3, 4})
	want := []int{1, 2, 3, 4}
	for i, v := range want {
		if l[i] != v {
			t.Fatalf("got %v, want %v", l, want)
		}
	}
}

func TestSetAppendDedupes(t *testing.T) {
	s := SetOf("x").Append(SetOf("x")).Append(SetOf("y"))
	if len(s) != 2 {
		t.Fatalf("got %d members, want 2: %v", len(s), s)
	}
}

func TestMultiResultCombine2RetainsBothErrors(t *testing.T) {
	left := Fail(1, Single("left error"))
	right := Fail(2, Single("right error"))
	combined := Combine2(left, right)
	if len(combined.Errors) != 2 {
		t.Fatalf("got %d errors, want 2: %v", len(combined.Errors), combined.Errors)
	}
	if combined.Value.First != 1 || combined.Value.Second != 2 {
		t.Fatalf("got %+v", combined.Value)
	}
}

func TestMultiResultOkOnEmptyErrors(t *testing.T) {
	m := Ok[int, List[string]](42)
	if !m.Ok() {
		t.Fatalf("expected Ok")
	}
	value, errs, ok := m.Result()
	if !ok || value != 42 || len(errs) != 0 {
		t.Fatalf("got %v %v %v", value, errs, ok)
	}
}

func TestMultiResultThenAppendsErrors(t *testing.T) {
	m := Fail(1, Single("first"))
	chained := Then(m, func(v int) MultiResult[int, List[string]] {
		return Fail(v+1, Single("second"))
	})
	if chained.Value != 2 {
		t.Fatalf("got value %d", chained.Value)
	}
	if len(chained.Errors) != 2 {
		t.Fatalf("got %d errors: %v", len(chained.Errors), chained.Errors)
	}
}
