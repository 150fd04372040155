package calculator

import (
	"fmt"
	"strconv"

	"github.com/manifoldco/promptui"
)

var operatorLabels = map[string]Operator{
	"Add":      Add,
	"Subtract": Subtract,
	"Multiply": Multiply,
	"Divide":   Divide,
}

// Run drives the interactive calculator loop. Malformed input is
// re-prompted by the validator; a division by zero is reported and the
// loop continues.
func Run() {
	fmt.Println("--- Arithmetic Calculator ---")

	for {
		a, err := promptNumber("Enter first number")
		if err != nil {
			fmt.Println("Exiting...")
			return
		}

		opSelect := promptui.Select{
			Label: "Select operation",
			Items: []string{"Add", "Subtract", "Multiply", "Divide"},
		}
		_, choice, err := opSelect.Run()
		if err != nil {
			fmt.Println("Exiting...")
			return
		}

		b, err := promptNumber("Enter second number")
		if err != nil {
			fmt.Println("Exiting...")
			return
		}

		op := operatorLabels[choice]
		result, err := Compute(a, b, op)
		if err != nil {
			fmt.Printf("Cannot compute: %v\n", err)
		} else {
			fmt.Printf("%v %s %v = %.2f\n", a, op, b, result)
		}

		again := promptui.Prompt{
			Label:     "Another calculation",
			IsConfirm: true,
		}
		if _, err := again.Run(); err != nil {
			fmt.Println("Exiting...")
			return
		}
	}
}

func promptNumber(label string) (float64, error) {
	prompt := promptui.Prompt{
		Label:    label,
		Validate: validateNumber,
	}
	raw, err := prompt.Run()
	if err != nil {
		return 0, err
	}
	return strconv.ParseFloat(raw, 64)
}
