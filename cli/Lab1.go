package cli

import (
	calculator "github.com/potakaaa/PDC-lab-activities/labs/calculator"
)

func Lab1() {
	calculator.Run()
}
