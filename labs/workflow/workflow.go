// Package workflow simulates a git workflow agent that analyses a
// prompt, stages files, commits, pushes and opens a pull request. The
// same task list runs once sequentially and once with a goroutine per
// task, with elapsed time measured for each mode.
package workflow

// Task describes one simulated git workflow to run end to end.
type Task struct {
	Prompt  string
	Files   []string
	Message string
	Remote  string
	Branch  string
	Title   string
	Desc    string
}

// SampleTasks is the lab's demo workload.
func SampleTasks() []Task {
	return []Task{
		{
			Prompt:  "Fix bug in login",
			Files:   []string{"login.go"},
			Message: "Fixed login bug",
			Remote:  "origin",
			Branch:  "fix/login",
			Title:   "Fix Login",
			Desc:    "Fixed the login bug",
		},
		{
			Prompt:  "Add feature X",
			Files:   []string{"feature.go"},
			Message: "Added feature X",
			Remote:  "origin",
			Branch:  "feat/x",
			Title:   "Feature X",
			Desc:    "Added feature X",
		},
		{
			Prompt:  "Update documentation",
			Files:   []string{"README.md"},
			Message: "Updated README",
			Remote:  "origin",
			Branch:  "docs/update",
			Title:   "Update Docs",
			Desc:    "Updated valid documentation",
		},
		{
			Prompt:  "Refactor database",
			Files:   []string{"db.go"},
			Message: "Refactored DB",
			Remote:  "origin",
			Branch:  "refactor/db",
			Title:   "Refactor DB",
			Desc:    "Refactored database connection",
		},
	}
}
