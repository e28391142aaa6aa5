package ebitools

import "testing"

func TestCursorClampsToScreen(t *testing.T) {
	tests := []struct {
		name string
		in   Vec2
		want Vec2
	}{
		{"inside", Vec2{100, 200}, Vec2{100, 200}},
		{"left of screen", Vec2{-5, 10}, Vec2{0, 10}},
		{"below screen", Vec2{50, 900}, Vec2{50, 600}},
		{"past corner", Vec2{1000, -1}, Vec2{800, 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := pointerContext(InputState{Cursor: tt.in})
			c := NewCursor("")
			if err := c.LoadContent(ctx); err != nil {
				t.Fatal(err)
			}
			ctx.Input.Update()
			c.Update(ctx)
			if c.Position() != tt.want {
				t.Errorf("Position = %v, want %v", c.Position(), tt.want)
			}
		})
	}
}

func TestCursorMissingContent(t *testing.T) {
	ctx := newTestContext()
	ctx.Content = NewContent(nil)
	c := NewCursor("missing")
	if err := c.LoadContent(ctx); err == nil {
		t.Fatal("expected error for missing cursor image")
	}
}
