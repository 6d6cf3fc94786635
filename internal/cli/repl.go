package cli

import (
	"bufio"
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/aaronromeo/swolecrew/internal/catalog"
)

// printlnFn and printFn are test seams for user-facing output.
var (
	printlnFn = fmt.Println
	printFn   = fmt.Print
)

const helpText = `Commands:
  users N              set how many people are training
  name ID TEXT...      rename a user
  goal ID GOAL         set a goal: hypertrophy, strength or endurance
  exercises ID N       set the exercise count (4-10, default 6)
  show                 show the form
  generate             build a plan for every user and print it
  plans                print the last generated plans
  help                 show this help
  exit | quit          leave`

// runREPL reads one command per line and applies it to f. Handler errors are
// printed and the loop keeps going. It returns on EOF, exit or quit.
func runREPL(ctx context.Context, f Form, format string, prompt bool, scanner *bufio.Scanner) {
	for {
		if prompt {
			printFn("swolecrew> ")
		}
		if !scanner.Scan() {
			return
		}
		parts := strings.Fields(scanner.Text())
		if len(parts) == 0 {
			continue
		}
		cmd, args := strings.ToLower(parts[0]), parts[1:]

		var err error
		switch cmd {
		case "help", "?":
			printlnFn(helpText)

		case "users":
			if len(args) == 0 {
				printlnFn("usage: users N")
				continue
			}
			if err = f.SetUserCount(ctx, strings.Join(args, " ")); err == nil {
				err = show(ctx, f)
			}

		case "name", "goal", "exercises":
			err = edit(ctx, f, cmd, args)

		case "show":
			err = show(ctx, f)

		case "generate":
			if err = f.Generate(ctx); err == nil {
				err = printPlans(ctx, f, format)
			}

		case "plans":
			err = printPlans(ctx, f, format)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
		if err != nil {
			printlnFn("error:", err)
		}
	}
}

func edit(ctx context.Context, f Form, cmd string, args []string) error {
	if len(args) < 2 {
		printlnFn(fmt.Sprintf("usage: %s ID VALUE", cmd))
		return nil
	}
	id, err := strconv.Atoi(args[0])
	if err != nil {
		printlnFn("user id must be a number:", args[0])
		return nil
	}
	value := strings.Join(args[1:], " ")

	var e Edit
	switch cmd {
	case "name":
		e.Name = &value
	case "goal":
		if !catalog.Goal(strings.ToLower(value)).Known() {
			printlnFn(fmt.Sprintf("unknown goal %q; pick one of %s", value, goalList()))
			return nil
		}
		e.Goal = &value
	case "exercises":
		e.Exercises = &value
	}
	if err := f.UpdateUser(ctx, id, e); err != nil {
		return err
	}
	return show(ctx, f)
}

func show(ctx context.Context, f Form) error {
	v, err := f.View(ctx)
	if err != nil {
		return err
	}
	printlnFn(fmt.Sprintf("Users: %s", v.UserCount))
	for _, u := range v.Users {
		exercises := u.Exercises
		if exercises == "" {
			exercises = "-"
		}
		printlnFn(fmt.Sprintf("  %d. %s · %s · %s exercises", u.ID, u.Name, u.Goal.Title(), exercises))
	}
	if v.HasPlans {
		printlnFn("Plans are ready; type plans to see them.")
	}
	return nil
}

func printPlans(ctx context.Context, f Form, format string) error {
	b, err := f.Plans(ctx, format)
	if err != nil {
		return err
	}
	printlnFn(strings.TrimRight(string(b), "\n"))
	return nil
}

func goalList() string {
	goals := catalog.Goals()
	names := make([]string, 0, len(goals))
	for _, g := range goals {
		names = append(names, string(g))
	}
	return strings.Join(names, ", ")
}
