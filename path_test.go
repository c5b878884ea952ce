package specflow_test

import (
	"testing"

	"github.com/pedrojosemoragallegos/specflow"
)

func TestPath_String(t *testing.T) {
	cases := []struct {
		name string
		path specflow.Path
		want string
	}{
		{"root", specflow.Path{}, "$"},
		{"single key", specflow.Path{}.Key("name"), "name"},
		{"nested keys", specflow.Path{}.Key("a").Key("b"), "a.b"},
		{"index", specflow.Path{}.Index(0), "[0]"},
		{"mixed", specflow.Path{}.Key("addresses").Index(1).Key("zipcode"), "addresses[1].zipcode"},
		{"index then key", specflow.Path{}.Index(2).Key("x"), "[2].x"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.path.String(); got != tc.want {
				t.Fatalf("got %q want %q", got, tc.want)
			}
		})
	}
}

func TestPath_ExtensionDoesNotAliasSiblings(t *testing.T) {
	base := specflow.Path{}.Key("root")
	left := base.Key("left")
	right := base.Key("right")
	if left.String() != "root.left" || right.String() != "root.right" {
		t.Fatalf("siblings alias: left=%s right=%s", left, right)
	}
	if base.String() != "root" {
		t.Fatalf("base mutated: %s", base)
	}
}
