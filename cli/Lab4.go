package cli

import (
	workflow "github.com/potakaaa/PDC-lab-activities/labs/workflow"
)

func Lab4() {
	workflow.Run()
}
