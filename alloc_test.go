package ytmwiki

import "testing"

func TestDecorateAllocations(t *testing.T) {
	msg := Message{
		Text:     "foo barr YTM-14 bar @userlogin",
		Rendered: `foo barr <a href="/issue/YTM-14" title="Fake issue summary">YTM-14</a> bar <a href="/user/userlogin">Mr. User</a>`,
	}
	allocs := testing.AllocsPerRun(100, func() {
		_ = Decorate(msg)
	})
	if allocs > 300 {
		t.Fatalf("too many allocations per Decorate: got %.2f", allocs)
	}
}
