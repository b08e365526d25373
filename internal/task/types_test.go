package task

import "testing"

func TestParseStatus(t *testing.T) {
	tests := []struct {
		input  string
		want   Status
		wantOK bool
	}{
		{"todo", StatusTodo, true},
		{"in-progress", StatusInProgress, true},
		{"done", StatusDone, true},
		{"TODO", StatusTodo, true},
		{"In-Progress", StatusInProgress, true},
		{"DONE", StatusDone, true},
		{"doing", 0, false},
		{"in_progress", 0, false},
		{"inprogress", 0, false},
		{" done", 0, false},
		{"", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, ok := ParseStatus(tt.input)
			if ok != tt.wantOK {
				t.Fatalf("ParseStatus(%q) ok = %v, want %v", tt.input, ok, tt.wantOK)
			}
			if ok && got != tt.want {
				t.Errorf("ParseStatus(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestStatusString(t *testing.T) {
	tests := []struct {
		status Status
		want   string
	}{
		{StatusTodo, "todo"},
		{StatusInProgress, "in-progress"},
		{StatusDone, "done"},
		{Status(42), "unknown"},
	}

	for _, tt := range tests {
		if got := tt.status.String(); got != tt.want {
			t.Errorf("Status(%d).String() = %q, want %q", tt.status, got, tt.want)
		}
	}
}

func TestStatusRoundTrip(t *testing.T) {
	for _, s := range Statuses() {
		got, ok := ParseStatus(s.String())
		if !ok || got != s {
			t.Errorf("ParseStatus(%q) = %v, %v; want %v, true", s.String(), got, ok, s)
		}
	}
}

func TestStatusEmoji(t *testing.T) {
	seen := make(map[string]bool)
	for _, s := range Statuses() {
		e := s.Emoji()
		if e == "" {
			t.Errorf("Emoji() for %s is empty", s)
		}
		if seen[e] {
			t.Errorf("Emoji() for %s is not unique: %s", s, e)
		}
		seen[e] = true
	}
}

func TestNewDefaultsToTodo(t *testing.T) {
	task := New(7, "Feed the cat")
	if task.ID != 7 || task.Description != "Feed the cat" || task.Status != StatusTodo {
		t.Errorf("New() = %+v", task)
	}

	task = WithStatus(8, "Nap", StatusDone)
	if task.Status != StatusDone {
		t.Errorf("WithStatus() status = %v, want done", task.Status)
	}
}

func TestNextID(t *testing.T) {
	tests := []struct {
		name  string
		tasks []Task
		want  uint32
	}{
		{"empty list", nil, 1},
		{"single", []Task{New(1, "a")}, 2},
		{"gap", []Task{New(1, "a"), New(5, "b"), New(3, "c")}, 6},
		{"unsorted", []Task{New(9, "a"), New(2, "b")}, 10},
		{"zero id", []Task{New(0, "a")}, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NextID(tt.tasks); got != tt.want {
				t.Errorf("NextID() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestIndex(t *testing.T) {
	tasks := []Task{New(1, "first"), New(2, "second"), New(2, "duplicate")}

	if got := Index(tasks, 2); got != 1 {
		t.Errorf("Index(2) = %d, want 1 (first match)", got)
	}
	if got := Index(tasks, 99); got != -1 {
		t.Errorf("Index(99) = %d, want -1", got)
	}
}

func TestFilterAndCounts(t *testing.T) {
	tasks := []Task{
		WithStatus(1, "a", StatusTodo),
		WithStatus(2, "b", StatusDone),
		WithStatus(3, "c", StatusTodo),
		WithStatus(4, "d", StatusInProgress),
	}

	todos := Filter(tasks, StatusTodo)
	if len(todos) != 2 || todos[0].ID != 1 || todos[1].ID != 3 {
		t.Errorf("Filter(todo) = %+v", todos)
	}
	if got := Filter(tasks[:1], StatusDone); len(got) != 0 {
		t.Errorf("Filter(done) on todo-only list = %+v, want empty", got)
	}

	counts := Counts(tasks)
	if counts[StatusTodo] != 2 || counts[StatusInProgress] != 1 || counts[StatusDone] != 1 {
		t.Errorf("Counts() = %v", counts)
	}
	if empty := Counts(nil); len(empty) != 3 {
		t.Errorf("Counts(nil) has %d entries, want 3", len(empty))
	}
}

func TestClone(t *testing.T) {
	if Clone(nil) != nil {
		t.Error("Clone(nil) should be nil")
	}

	orig := []Task{New(1, "a")}
	cp := Clone(orig)
	cp[0].Description = "changed"
	if orig[0].Description != "a" {
		t.Error("Clone() shares backing array with the original")
	}
}
