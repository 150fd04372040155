package gwa

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/jedib0t/go-pretty/table"
	"github.com/manifoldco/promptui"
)

// Run drives the interactive grade calculator: build a grade list, then
// compute its average with threads, processes, or both back-to-back.
func Run() {
	fmt.Println("--- Unified Grade Calculator ---")

	var grades []float64
	for {
		menu := promptui.Select{
			Label: "Grade Calculator",
			Items: []string{"Add Grade", "Compute GWA", "Exit"},
		}
		_, choice, err := menu.Run()
		if err != nil || choice == "Exit" {
			fmt.Println("Exiting...")
			return
		}

		switch choice {
		case "Add Grade":
			grade, err := promptFloat("Enter grade")
			if err != nil {
				continue
			}
			grades = append(grades, grade)
			fmt.Printf("Grade %v added successfully.\n", grade)

		case "Compute GWA":
			if len(grades) == 0 {
				fmt.Println("No grades to compute.")
				continue
			}
			compute(grades)
		}
	}
}

func compute(grades []float64) {
	method := promptui.Select{
		Label: "Select computation method",
		Items: []string{"Multithreading", "Multiprocessing", "Compare both"},
	}
	_, choice, err := method.Run()
	if err != nil {
		return
	}

	workers, err := promptWorkers(len(grades))
	if err != nil {
		return
	}

	switch choice {
	case "Multithreading":
		res, err := ComputeThreaded(grades, workers)
		report("Multithreading", res, err)

	case "Multiprocessing":
		res, err := ComputeProcesses(grades, workers)
		report("Multiprocessing", res, err)

	case "Compare both":
		threaded, terr := ComputeThreaded(grades, workers)
		procs, perr := ComputeProcesses(grades, workers)
		report("Multithreading", threaded, terr)
		report("Multiprocessing", procs, perr)
		if terr == nil && perr == nil {
			renderComparison(threaded, procs)
		}
	}
}

func report(label string, res Result, err error) {
	if err != nil {
		fmt.Printf("[main] %s failed: %v\n", label, err)
		return
	}
	fmt.Printf("\n[main] Final GWA (%s): %.2f in %v\n", label, res.Average, res.Elapsed)
}

func renderComparison(threaded, procs Result) {
	t := table.NewWriter()

	t.SetOutputMirror(os.Stdout)

	t.AppendHeader(table.Row{"Method", "Workers", "GWA", "Elapsed"})
	t.AppendRow(table.Row{"Multithreading", threaded.Workers, fmt.Sprintf("%.2f", threaded.Average), threaded.Elapsed})
	t.AppendRow(table.Row{"Multiprocessing", procs.Workers, fmt.Sprintf("%.2f", procs.Average), procs.Elapsed})
	t.Render()
}

func promptFloat(label string) (float64, error) {
	prompt := promptui.Prompt{
		Label: label,
		Validate: func(input string) error {
			if _, err := strconv.ParseFloat(input, 64); err != nil {
				return errors.New("invalid grade, must be a number")
			}
			return nil
		},
	}
	raw, err := prompt.Run()
	if err != nil {
		return 0, err
	}
	return strconv.ParseFloat(raw, 64)
}

func promptWorkers(max int) (int, error) {
	prompt := promptui.Prompt{
		Label: fmt.Sprintf("Enter number of workers (1-%d)", max),
		Validate: func(input string) error {
			n, err := strconv.Atoi(input)
			if err != nil {
				return errors.New("invalid input, enter an integer")
			}
			if n < 1 || n > max {
				return fmt.Errorf("enter a number between 1 and %d", max)
			}
			return nil
		},
	}
	raw, err := prompt.Run()
	if err != nil {
		return 0, err
	}
	return strconv.Atoi(raw)
}
