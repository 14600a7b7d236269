package bst

import "bytes"
import "strings"
import "testing"

func TestNodeColor(t *testing.T) {
	nd := Newnode[int64, string](10, "ten")
	if nd.Isblack() {
		t.Errorf("expected new node to be red")
	} else if !nd.Setblack().Isblack() {
		t.Errorf("expected black")
	} else if !nd.Togglelink().Isred() {
		t.Errorf("expected red after toggle")
	} else if !nd.Togglelink().Isblack() {
		t.Errorf("expected black after toggle")
	} else if nd.Setred().Isblack() {
		t.Errorf("expected red")
	}

	src := Newnode[int64, string](20, "twenty").Setblack()
	if !nd.Copycolor(src).Isblack() {
		t.Errorf("expected black from src")
	} else if !nd.Copycolor(src.Setred()).Isred() {
		t.Errorf("expected red from src")
	}

	var missing *Node[int64, string]
	if !missing.Isblack() || missing.Isred() {
		t.Errorf("expected missing node to be black")
	}
	if nd.Copycolor(missing).Isred() {
		t.Errorf("expected black from missing node")
	}
}

func TestNodeChildren(t *testing.T) {
	nd := Newnode[int64, string](2, "two")
	left, right := Newnode[int64, string](1, "one"), Newnode[int64, string](3, "three")
	nd.Setleft(left).Setright(right)
	if nd.Left() != left || nd.Right() != right {
		t.Errorf("unexpected children %v %v", nd.Left(), nd.Right())
	} else if nd.Key() != 2 || nd.Value() != "two" {
		t.Errorf("unexpected %v %v", nd.Key(), nd.Value())
	}
}

func TestNodeDotdump(t *testing.T) {
	nd := Newnode[int64, string](2, "two").Setblack()
	nd.Setleft(Newnode[int64, string](1, "one"))
	nd.Setright(Newnode[int64, string](3, "three").Setblack())

	buf := new(bytes.Buffer)
	nd.dotdump(buf)
	out := buf.String()
	refs := []string{
		`"2" [label="{2}"];`,
		`"2" -> "1" [color=red];`,
		`"2" -> "3" [color=black];`,
		`"1" [label="{1}"];`,
		`"3" [label="{3}"];`,
	}
	for _, ref := range refs {
		if !strings.Contains(out, ref) {
			t.Errorf("expected %q in %v", ref, out)
		}
	}
}

func TestNodePprint(t *testing.T) {
	nd := Newnode[int64, string](2, "two").Setblack()
	nd.Setleft(Newnode[int64, string](1, "one"))

	buf := new(bytes.Buffer)
	nd.pprint(buf, "")
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 5 {
		t.Errorf("unexpected %q", lines)
	} else if lines[0] != "2 true" {
		t.Errorf("unexpected %q", lines[0])
	} else if lines[1] != "  left:   1 false" {
		t.Errorf("unexpected %q", lines[1])
	}
}
