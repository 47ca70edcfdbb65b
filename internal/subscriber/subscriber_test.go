package subscriber

import "testing"

type mailQueued struct{ Action }

type subjectPrefix struct{ Filter }

func TestEmbeddedKinds(t *testing.T) {
	var a Subscriber = mailQueued{}
	var f Subscriber = subjectPrefix{}

	if !IsAction(a) || IsFilter(a) {
		t.Errorf("mailQueued kind = %q, want %q", a.SubscriberKind(), KindAction)
	}
	if !IsFilter(f) || IsAction(f) {
		t.Errorf("subjectPrefix kind = %q, want %q", f.SubscriberKind(), KindFilter)
	}
	if IsAction(nil) || IsFilter(nil) {
		t.Error("nil subscriber should match no kind")
	}
}

func TestParseKind(t *testing.T) {
	cases := []struct {
		input  string
		want   Kind
		wantOK bool
	}{
		{"action", KindAction, true},
		{"filter", KindFilter, true},
		{"Action", "", false},
		{"", "", false},
	}
	for _, tc := range cases {
		t.Run(tc.input, func(t *testing.T) {
			got, ok := ParseKind(tc.input)
			if got != tc.want || ok != tc.wantOK {
				t.Fatalf("ParseKind(%q) = %q, %v; want %q, %v", tc.input, got, ok, tc.want, tc.wantOK)
			}
		})
	}
}
