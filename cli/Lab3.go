package cli

import (
	"fmt"

	payroll "github.com/potakaaa/PDC-lab-activities/labs/payroll"

	"github.com/manifoldco/promptui"
)

func Lab3() {
	// select which payroll mode to simulate
	prompt := promptui.Select{
		Label: "Select which part to simulate.",
		Items: []string{
			"Part 1 - Single salary (task parallelism, thread pool)",
			"Part 2 - Employee batch (data parallelism, process pool)",
		},
	}
	_, result, err := prompt.Run()

	if err != nil {
		fmt.Println("Exiting...")
		return
	}

	switch result {
	case "Part 1 - Single salary (task parallelism, thread pool)":
		payroll.RunSingle()
	case "Part 2 - Employee batch (data parallelism, process pool)":
		payroll.RunBatch()
	}
}
