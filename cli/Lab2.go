package cli

import (
	gwa "github.com/potakaaa/PDC-lab-activities/labs/gwa"
)

func Lab2() {
	gwa.Run()
}
