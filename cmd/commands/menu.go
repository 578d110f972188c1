package commands

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/EstruturaDados/free-fire/internal/cli"
	"github.com/EstruturaDados/free-fire/pkg/inventory"
	"github.com/EstruturaDados/free-fire/pkg/models"
	"github.com/EstruturaDados/free-fire/pkg/sorting"
)

// firstSortOption is the menu number of the first entry of sorting.Algorithms
const firstSortOption = 3

var menuOptions = buildMenuOptions()

func buildMenuOptions() []string {
	options := []string{
		"1. Add component",
		"2. Remove component (by name)",
	}
	for i, alg := range sorting.Algorithms() {
		options = append(options, fmt.Sprintf("%d. %s", firstSortOption+i, alg.MenuLabel()))
	}
	return append(options,
		"6. Binary search by NAME",
		"7. List components",
		"0. Exit",
	)
}

// NewMenuCommand creates the menu command
func NewMenuCommand() *cobra.Command {
	var from, sample string

	cmd := &cobra.Command{
		Use:   "menu",
		Short: "Organize components with the numbered text menu",
		Long: `Run the numbered text menu over standard input and output.

The inventory lives only for the duration of the session. Sorting by name
enables the binary search; adding, removing or sorting by another key
disables it again.`,
		Example: `  # Start with an empty inventory
  freefire menu

  # Start with the escape tower parts already collected
  freefire menu --sample tower

  # Script a session
  printf '3\n7\n0\ny\n' | freefire menu --from parts.yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			inv, err := loadInventory(from, sample)
			if err != nil {
				return err
			}

			session := &menuSession{
				inv:       inv,
				prompt:    cli.NewPrompter(cmd.InOrStdin(), cmd.OutOrStdout()),
				out:       cmd.OutOrStdout(),
				precision: commandContext().Precision(),
			}
			return session.run()
		},
	}

	addSeedFlags(cmd, &from, &sample)
	return cmd
}

type menuSession struct {
	inv       *inventory.Inventory
	prompt    *cli.Prompter
	out       io.Writer
	precision int
}

func (s *menuSession) run() error {
	for {
		s.printMenu()

		choice, err := s.prompt.ReadIntInRange("Choose an option: ", 0, len(menuOptions)-1)
		if err == nil {
			var quit bool
			quit, err = s.dispatch(choice)
			if err == nil && quit {
				return nil
			}
		}

		if errors.Is(err, cli.ErrInputClosed) {
			fmt.Fprintln(s.out)
			fmt.Fprintln(s.out, "Input closed, exiting.")
			return nil
		}
		if err != nil {
			return err
		}
	}
}

func (s *menuSession) dispatch(choice int) (bool, error) {
	switch choice {
	case 1:
		return false, s.insert()
	case 2:
		return false, s.remove()
	case 3, 4, 5:
		s.sort(sorting.Algorithms()[choice-firstSortOption])
	case 6:
		return false, s.search()
	case 7:
		cli.RenderComponents(s.out, s.inv.List())
	case 0:
		return s.confirmExit()
	}
	return false, nil
}

func (s *menuSession) printMenu() {
	order := "unsorted"
	if s.inv.IsNameSorted() {
		order = "by name"
	}

	fmt.Fprintln(s.out)
	fmt.Fprintln(s.out, strings.Repeat("=", 46))
	fmt.Fprintln(s.out, "  ESCAPE TOWER - COMPONENT ORGANIZER")
	fmt.Fprintf(s.out, "  %d/%d components | order: %s\n", s.inv.Len(), s.inv.Capacity(), order)
	fmt.Fprintln(s.out, strings.Repeat("=", 46))
	for _, option := range menuOptions {
		fmt.Fprintln(s.out, option)
	}
}

// readField prompts until value passes validate
func (s *menuSession) readField(prompt string, maxLen int, validate func(string) error) (string, error) {
	for {
		value, err := s.prompt.ReadLine(prompt, maxLen)
		if err != nil {
			return "", err
		}
		if err := validate(value); err != nil {
			fmt.Fprintf(s.out, "Invalid value: %v. Try again.\n", err)
			continue
		}
		return value, nil
	}
}

func (s *menuSession) insert() error {
	if s.inv.Len() >= s.inv.Capacity() {
		fmt.Fprintf(s.out, "Maximum capacity (%d) reached.\n", s.inv.Capacity())
		return nil
	}

	name, err := s.readField("Name: ", models.MaxNameLength, cli.ValidateComponentName)
	if err != nil {
		return err
	}
	typ, err := s.readField("Type: ", models.MaxTypeLength, cli.ValidateComponentType)
	if err != nil {
		return err
	}
	priority, err := s.prompt.ReadIntInRange(
		fmt.Sprintf("Priority (%d-%d): ", models.MinPriority, models.MaxPriority),
		models.MinPriority, models.MaxPriority)
	if err != nil {
		return err
	}

	c := models.Component{Name: name, Type: typ, Priority: priority}
	if err := s.inv.Insert(c); err != nil {
		fmt.Fprintf(s.out, "Could not add component: %v\n", err)
		return nil
	}

	fmt.Fprintf(s.out, "Component '%s' added.\n", name)
	cli.RenderComponents(s.out, s.inv.List())
	return nil
}

func (s *menuSession) remove() error {
	if s.inv.Len() == 0 {
		fmt.Fprintln(s.out, "Inventory is empty.")
		return nil
	}

	name, err := s.prompt.ReadLine("Name of the component to remove: ", models.MaxNameLength)
	if err != nil {
		return err
	}

	if _, err := s.inv.RemoveByName(name); err != nil {
		if errors.Is(err, inventory.ErrNotFound) {
			fmt.Fprintf(s.out, "Component '%s' not found.\n", name)
			return nil
		}
		return err
	}

	fmt.Fprintf(s.out, "Component '%s' removed.\n", name)
	cli.RenderComponents(s.out, s.inv.List())
	return nil
}

func (s *menuSession) sort(alg sorting.Algorithm) {
	report, err := s.inv.Sort(alg)
	if err != nil {
		if errors.Is(err, inventory.ErrTooFewToSort) {
			fmt.Fprintln(s.out, "Too few components to sort.")
			return
		}
		fmt.Fprintf(s.out, "Sort failed: %v\n", err)
		return
	}

	fmt.Fprintf(s.out, "%s -> comparisons: %d | time: %s\n",
		alg.Label(), report.Comparisons, cli.FormatSeconds(report.Seconds, s.precision))
	cli.RenderComponents(s.out, s.inv.List())
}

func (s *menuSession) search() error {
	if !s.inv.IsNameSorted() {
		fmt.Fprintln(s.out, "Binary search requires the inventory sorted by NAME. Use option 3 first.")
		return nil
	}

	name, err := s.prompt.ReadLine("Name to search: ", models.MaxNameLength)
	if err != nil {
		return err
	}

	result, err := s.inv.SearchByName(name)
	if err != nil {
		if errors.Is(err, inventory.ErrEmpty) {
			fmt.Fprintln(s.out, "Inventory is empty.")
			return nil
		}
		return err
	}

	if result.Found {
		fmt.Fprintf(s.out, "Component found: %s at position %02d.\n", result.Component, result.Index+1)
	} else {
		fmt.Fprintf(s.out, "Component '%s' NOT found.\n", name)
	}
	fmt.Fprintf(s.out, "Binary search comparisons: %d\n", result.Comparisons)
	cli.RenderComponents(s.out, s.inv.List())
	return nil
}

func (s *menuSession) confirmExit() (bool, error) {
	if s.inv.Len() > 0 {
		ok, err := s.prompt.Confirm(
			fmt.Sprintf("%d components will be discarded. Exit?", s.inv.Len()), false)
		if err != nil || !ok {
			return false, err
		}
	}
	fmt.Fprintln(s.out, "Exiting. Good luck on the escape!")
	return true, nil
}
