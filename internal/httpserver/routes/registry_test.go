package routes

import (
	"testing"
)

func TestGroupsAreMountedInOrder(t *testing.T) {
	got := Groups()
	want := []string{"health", "api"}

	if len(got) != len(want) {
		t.Fatalf("Groups() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Groups()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}
