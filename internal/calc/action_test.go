package calc

import "testing"

func TestIsSurprise(t *testing.T) {
	surprises := []string{ActionEquals, ActionSin, ActionCos, ActionTan, ActionLog, ActionLn, ActionSqrt, ActionSquare, ActionTenPow, ActionFact, ActionAbs}
	for _, name := range surprises {
		if !IsSurprise(Named(name)) {
			t.Fatalf("expected %s to trigger the surprise", name)
		}
	}
	quiet := []Action{
		Named(ActionPi), Named(ActionE), Named(ActionPow), Named(ActionClear),
		Named(ActionDelete), Named(ActionSign), Digit("1"), Operator("+"),
		Decimal(), Parenthesis("("), Mode(AngleRad), DismissOverlay(),
	}
	for _, a := range quiet {
		if IsSurprise(a) {
			t.Fatalf("expected %s not to trigger the surprise", a)
		}
	}
}

func TestReducePowRoutesToOperator(t *testing.T) {
	s := NewSession()
	s.Entry = "2"
	s, ok := Reduce(s, Named(ActionPow))
	if !ok {
		t.Fatalf("expected pow handled")
	}
	if s.Operator != "^" || s.History != "2 ^" || !s.AwaitingOperand {
		t.Fatalf("unexpected state %+v", s)
	}
}

func TestReduceModeSwitch(t *testing.T) {
	s, ok := Reduce(NewSession(), Mode(AngleGrad))
	if !ok || s.AngleMode != AngleGrad {
		t.Fatalf("expected grad mode, got %q (%v)", s.AngleMode, ok)
	}
	if s.Entry != "0" {
		t.Fatalf("mode switch must not touch the entry")
	}
	if _, ok := Reduce(s, Action{Kind: KindMode, Token: "turns"}); ok {
		t.Fatalf("expected unknown mode rejected")
	}
}

func TestReduceIgnoresUnknownTokens(t *testing.T) {
	start := NewSession()
	start.Entry = "12"
	for _, a := range []Action{
		Named("teleport"),
		Digit("x"),
		Digit("12"),
		Parenthesis("["),
		Operator(""),
		Named(ActionEquals),
		DismissOverlay(),
	} {
		got, ok := Reduce(start, a)
		if ok {
			t.Fatalf("expected %s to be unhandled", a)
		}
		if got != start {
			t.Fatalf("expected %s to leave state untouched", a)
		}
	}
}
