package main

import (
	"fmt"
	"os"

	"github.com/manifoldco/promptui"

	cli "github.com/potakaaa/PDC-lab-activities/cli"
	"github.com/potakaaa/PDC-lab-activities/labs/gwa"
	"github.com/potakaaa/PDC-lab-activities/labs/payroll"
)

func main() {

	// Spawned worker processes re-enter the binary through hidden
	// subcommands and talk to the parent over stdin/stdout only.
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case gwa.WorkerArg:
			if err := gwa.RunWorker(os.Stdin, os.Stdout); err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(1)
			}
			return
		case payroll.WorkerArg:
			if err := payroll.RunWorker(os.Stdin, os.Stdout); err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(1)
			}
			return
		}
	}

	// Select lab activity
	prompt := promptui.Select{
		Label: "Select Lab Activity to run",
		Items: []string{
			"Lab 1 - Arithmetic Calculator",
			"Lab 2 - GWA Calculator (Multithreading vs Multiprocessing)",
			"Lab 3 - Payroll Deduction Calculator",
			"Lab 4 - Git Workflow Agent (Sequential vs Parallel)",
		},
	}
	_, result, err := prompt.Run()

	if err != nil {
		fmt.Println("Exiting...")
		return
	}

	switch result {
	case "Lab 1 - Arithmetic Calculator":
		cli.Lab1()

	case "Lab 2 - GWA Calculator (Multithreading vs Multiprocessing)":
		cli.Lab2()

	case "Lab 3 - Payroll Deduction Calculator":
		cli.Lab3()

	case "Lab 4 - Git Workflow Agent (Sequential vs Parallel)":
		cli.Lab4()

	}

}
