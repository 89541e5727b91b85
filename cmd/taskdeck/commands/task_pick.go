package commands

import (
	"fmt"

	"github.com/ktr0731/go-fuzzyfinder"

	"github.com/taskdeck/taskdeck/internal/errors"
	"github.com/taskdeck/taskdeck/internal/store"
)

// ErrPickerAborted indicates the user dismissed the interactive picker.
var ErrPickerAborted = errors.New("selection aborted")

// resolveTask finds the task identified by idArg, which may be a full ID or
// a unique prefix. With an empty idArg it opens an interactive fuzzy picker
// over the candidate tasks.
func resolveTask(list *store.List, candidates []store.Task, idArg string) (store.Task, error) {
	if idArg != "" {
		var matches []store.Task
		for _, t := range list.Tasks {
			if t.ID == idArg {
				return t, nil
			}
			if len(idArg) >= 4 && len(t.ID) >= len(idArg) && t.ID[:len(idArg)] == idArg {
				matches = append(matches, t)
			}
		}
		switch len(matches) {
		case 1:
			return matches[0], nil
		case 0:
			return store.Task{}, errors.Wrapf(store.ErrTaskNotFound, "%s", idArg)
		default:
			return store.Task{}, errors.Newf("ambiguous task ID prefix %q (%d matches)", idArg, len(matches))
		}
	}

	return pickTask(candidates)
}

// pickTask opens a fuzzy finder over tasks.
func pickTask(tasks []store.Task) (store.Task, error) {
	if len(tasks) == 0 {
		return store.Task{}, errors.Wrap(store.ErrTaskNotFound, "no matching tasks")
	}

	idx, err := fuzzyfinder.Find(
		tasks,
		func(i int) string {
			return fmt.Sprintf("%s (%s)", tasks[i].Title, tasks[i].Priority)
		},
		fuzzyfinder.WithPreviewWindow(func(i, w, h int) string {
			if i == -1 {
				return ""
			}
			t := tasks[i]
			return fmt.Sprintf("ID: %s\nStatus: %s\nPriority: %s\nCreated: %s\n\n%s",
				t.ID,
				t.Status,
				t.Priority,
				t.CreatedAt.Local().Format("2006-01-02 15:04:05"),
				t.Title,
			)
		}),
	)
	if err != nil {
		if errors.Is(err, fuzzyfinder.ErrAbort) {
			return store.Task{}, ErrPickerAborted
		}
		return store.Task{}, errors.Wrap(err, "interactive selection failed")
	}

	return tasks[idx], nil
}
