package workflow

import (
	"fmt"
	"os"
	"time"

	"github.com/jedib0t/go-pretty/table"
	"github.com/manifoldco/promptui"
)

// Run drives the interactive workflow lab: the demo tasks executed
// sequentially, in parallel, or both back-to-back with a timing table.
func Run() {
	fmt.Println("--- Git Workflow Agent ---")

	tasks := SampleTasks()

	method := promptui.Select{
		Label: "Select execution mode",
		Items: []string{"Sequential", "Parallel", "Compare both"},
	}
	_, choice, err := method.Run()
	if err != nil {
		fmt.Println("Exiting...")
		return
	}

	switch choice {
	case "Sequential":
		elapsed := RunSequential(tasks, os.Stdout)
		fmt.Printf("\nSequential execution time: %v\n", elapsed)

	case "Parallel":
		elapsed := RunParallel(tasks, os.Stdout)
		fmt.Printf("\nParallel execution time: %v\n", elapsed)

	case "Compare both":
		fmt.Println("Running sequential execution...")
		seq := RunSequential(tasks, os.Stdout)
		fmt.Println("\nRunning parallel execution...")
		par := RunParallel(tasks, os.Stdout)
		renderComparison(len(tasks), seq, par)
	}
}

func renderComparison(tasks int, seq, par time.Duration) {
	t := table.NewWriter()

	t.SetOutputMirror(os.Stdout)

	t.AppendHeader(table.Row{"Mode", "Tasks", "Elapsed"})
	t.AppendRow(table.Row{"Sequential", tasks, seq})
	t.AppendRow(table.Row{"Parallel", tasks, par})
	t.Render()
}
