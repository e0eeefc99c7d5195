package cmd

import (
	"flag"
	"fmt"

	"github.com/charmbracelet/log"

	todotxt "github.com/nibzard/todotxt-go"
	"github.com/nibzard/todotxt-go/internal/config"
)

// lsCommand prints tasks in canonical form, optionally filtered by
// completion state or by a project/context tag.
func lsCommand(cfg *config.Config, args []string) error {
	fs := flag.NewFlagSet("ls", flag.ContinueOnError)
	complete := fs.Bool("complete", false, "Keep only finished tasks")
	incomplete := fs.Bool("incomplete", false, "Keep only unfinished tasks")
	project := fs.String("project", "", "Keep only tasks with this +project tag")
	context := fs.String("context", "", "Keep only tasks with this @context tag")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *complete && *incomplete {
		return fmt.Errorf("-complete and -incomplete are mutually exclusive")
	}

	input, source, err := readInput(cfg, fs.Args())
	if err != nil {
		return err
	}

	shown, total := 0, 0
	it := todotxt.Tasks(input)
	for task, ok := it.Next(); ok; task, ok = it.Next() {
		total++
		if *complete && !task.IsComplete() {
			continue
		}
		if *incomplete && task.IsComplete() {
			continue
		}
		if *project != "" && !hasTag(task, todotxt.TagProject, "+"+*project) {
			continue
		}
		if *context != "" && !hasTag(task, todotxt.TagContext, "@"+*context) {
			continue
		}
		fmt.Fprintln(stdout, task)
		shown++
	}

	log.Debug("listed tasks", "source", source, "shown", shown, "total", total)
	return nil
}

// hasTag scans the task's tags for one of the given kind and exact text.
func hasTag(task todotxt.Task, kind todotxt.TagKind, want string) bool {
	description := task.Description()
	tags := task.Tags()
	for tag, ok := tags.Next(); ok; tag, ok = tags.Next() {
		if tag.Kind == kind && tag.In(description) == want {
			return true
		}
	}
	return false
}
