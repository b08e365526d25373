package cmd

import (
	"flag"
	"fmt"

	"github.com/nibzard/trackr/internal/task"
	"github.com/nibzard/trackr/internal/taskfile"
)

// doctorCommand checks the configuration and the task file.
func (e *env) doctorCommand(args []string) error {
	// Parse doctor-specific flags
	fs := flag.NewFlagSet("trackr doctor", flag.ContinueOnError)
	fs.SetOutput(e.stderr)
	verbose := fs.Bool("v", false, "Verbose output")

	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() > 0 {
		return fmt.Errorf("%w: unexpected arguments: %v", ErrUsage, fs.Args())
	}

	e.out.Heading("trackr doctor")
	e.out.Plain("=============")
	e.out.Plain("")

	allOK := e.checkConfig(*verbose)
	if !e.checkTaskFile(*verbose) {
		allOK = false
	}

	// Overall status
	if allOK {
		e.out.Good("✅ All checks passed!")
		return nil
	}
	e.out.Warn("⚠️  Some checks failed. Tasks that cannot be read are lost on the next save.")
	return fmt.Errorf("doctor checks failed")
}

func (e *env) checkConfig(verbose bool) bool {
	e.out.Plain("Config:")
	if len(e.sources.Files) == 0 {
		e.out.Note("  No config files found, using defaults")
	}
	for _, f := range e.sources.Files {
		e.out.Plain("  ✅ %s", f)
	}
	if verbose {
		values := e.cfg.Values()
		for _, field := range e.sources.SortedSources() {
			e.out.Note("  %-15s %-30s (%s)", field, values[field], e.sources.Sources[field])
		}
	}
	e.out.Plain("")
	return true
}

func (e *env) checkTaskFile(verbose bool) bool {
	e.out.Plain("Task file: %s", e.store.Path())

	in, err := e.store.Inspect()
	if err != nil {
		e.out.Bad("  ❌ Error: %v", err)
		e.out.Plain("")
		return false
	}
	if !in.Exists {
		e.out.Warn("  ⚠️  Not found (will be created by the first add)")
		e.out.Plain("")
		return true
	}
	if in.Report.Rejected == taskfile.RejectEmpty {
		e.out.Warn("  ⚠️  Empty (treated as no tasks)")
		e.out.Plain("")
		return true
	}

	ok := true
	if in.Report.Rejected != taskfile.RejectNone {
		e.out.Bad("  ❌ Unreadable: %s", in.Report.Rejected)
		ok = false
	} else {
		e.out.Plain("  %d of %d task objects readable (%d bytes)", in.Report.Accepted(), in.Report.Candidates, in.Size)
	}
	for _, d := range in.Report.Dropped {
		e.out.Bad("  ❌ Object %d dropped, missing %v: %s", d.Index, d.Missing, d.Snippet)
		ok = false
	}
	if in.Report.Unbalanced {
		e.out.Bad("  ❌ Unbalanced braces, trailing objects may be lost")
		ok = false
	}

	if in.Validation != nil {
		for _, verr := range in.Validation.Errors {
			e.out.Bad("  ❌ Schema: %v", verr)
			ok = false
		}
		for _, w := range in.Validation.Warnings {
			e.out.Warn("  ⚠️  %s", w)
		}
	}

	if ok {
		e.out.Good("  ✅ OK")
		if verbose {
			e.out.Stats(task.Counts(in.Tasks))
		}
	}
	e.out.Plain("")
	return ok
}
