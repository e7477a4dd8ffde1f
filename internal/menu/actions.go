package menu

import (
	"context"
	"fmt"

	"github.com/jacksmith/pcat/internal/cli"
	"github.com/jacksmith/pcat/internal/model"
	"go.uber.org/zap"
)

func (s *Session) add() error {
	title, err := s.prompt("Project title: ")
	if err != nil {
		return err
	}

	rawHours, err := s.prompt("Estimated hours: ")
	if err != nil {
		return err
	}
	hours, err := cli.ParseHours(rawHours)
	if err != nil {
		return err
	}

	rawKind, err := s.prompt("Project type (1 - web, 2 - mobile): ")
	if err != nil {
		return err
	}
	kind, err := model.ParseKind(rawKind)
	if err != nil {
		return err
	}

	p, err := model.New(kind, title, hours)
	if err != nil {
		return err
	}
	s.catalog.Add(p)

	fmt.Fprintf(s.out, "%s %d. %s\n", cli.Green("Added"), s.catalog.Len(), p.Describe())
	return nil
}

func (s *Session) list() {
	entries := s.catalog.List()
	if len(entries) == 0 {
		fmt.Fprintln(s.out, "No projects.")
		return
	}

	fmt.Fprintln(s.out, "Projects:")
	for _, e := range entries {
		fmt.Fprintf(s.out, "%d. %s\n", e.Index, e.Project.Describe())
	}
}

func (s *Session) show() error {
	index, err := s.promptIndex()
	if err != nil {
		return err
	}

	p, err := s.catalog.Get(index)
	if err != nil {
		return err
	}
	fmt.Fprintln(s.out, p.Describe())

	if t, ok := p.(model.Taskable); ok {
		tasks := t.Tasks()
		fmt.Fprintln(s.out, "Tasks:")
		if len(tasks) == 0 {
			fmt.Fprintln(s.out, cli.Gray("  (none)"))
		}
		for _, task := range tasks {
			fmt.Fprintf(s.out, "- %s\n", task)
		}
	}
	return nil
}

func (s *Session) addTask() error {
	index, err := s.promptIndex()
	if err != nil {
		return err
	}

	// Fail before asking for the text if the project cannot take tasks
	if _, err := s.catalog.TasksOf(index); err != nil {
		return err
	}

	task, err := s.prompt("Task: ")
	if err != nil {
		return err
	}
	if err := s.catalog.AddTaskTo(index, task); err != nil {
		return err
	}

	fmt.Fprintf(s.out, "%s task to project %d.\n", cli.Green("Added"), index)
	return nil
}

func (s *Session) cost() error {
	index, err := s.promptIndex()
	if err != nil {
		return err
	}

	// Fail before asking for the rate if the project cannot be priced
	costed, err := s.catalog.CostedAt(index)
	if err != nil {
		return err
	}

	rawRate, err := s.prompt("Hourly rate: ")
	if err != nil {
		return err
	}
	rate, err := cli.ParseRate(rawRate)
	if err != nil {
		return err
	}

	cost := costed.CalculateCost(rate)
	fmt.Fprintf(s.out, "Project cost: %s\n", cli.FormatMoney(s.currency, cost))
	return nil
}

func (s *Session) save(ctx context.Context) error {
	projects := s.catalog.Projects()
	if err := s.store.Save(ctx, s.path, projects); err != nil {
		return err
	}
	fmt.Fprintf(s.out, "%s %d project(s) to %s.\n", cli.Green("Saved"), len(projects), s.path)
	return nil
}

// load replaces the catalog only after the whole file decoded.
func (s *Session) load(ctx context.Context) error {
	projects, err := s.store.Load(ctx, s.path)
	if err != nil {
		return err
	}
	s.catalog.Replace(projects)

	s.logger.Debug("catalog replaced", zap.Int("projects", len(projects)))
	fmt.Fprintf(s.out, "%s %d project(s) from %s.\n", cli.Green("Loaded"), len(projects), s.path)
	return nil
}
