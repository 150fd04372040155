package workflow

import (
	"fmt"
	"io"
	"strings"
	"time"
)

// stepUnit is one unit of simulated work inside a pipeline step.
var stepUnit = 250 * time.Millisecond

const boxWidth = 52

type agent struct {
	out  io.Writer
	task Task
}

// RunTask executes the simulated git workflow for one task end to end:
// prompt analysis, staging, commit, push, pull request. All output goes
// to out so callers can buffer a whole run and print it atomically.
func RunTask(task Task, out io.Writer) {
	a := &agent{out: out, task: task}

	a.banner("GIT WORKFLOW AGENT - STARTING")
	a.analyze()
	a.stage()
	a.commit()
	a.push()
	a.createPR()
	a.banner("AGENT COMPLETE - All tasks finished successfully")
}

func (a *agent) analyze() {
	a.header("PROMPT ANALYSIS")
	a.line("Input", a.task.Prompt)
	a.loading(5, "Analyzing intent and planning workflow...")
	a.success("Prompt understood. Workflow initialized.")
}

func (a *agent) stage() {
	a.header("STAGING FILES")
	a.line("Files", strings.Join(a.task.Files, ", "))
	a.loading(3, "Staging files to index...")
	a.success(fmt.Sprintf("Staged %d file(s) successfully.", len(a.task.Files)))
}

func (a *agent) commit() {
	a.header("CREATING COMMIT")
	a.line("Files", strings.Join(a.task.Files, ", "))
	a.line("Message", a.task.Message)
	a.loading(1, "Writing commit to repository...")
	a.success("Commit created successfully.")
}

func (a *agent) push() {
	a.header("PUSHING TO REMOTE")
	a.line("Remote", a.task.Remote)
	a.line("Branch", a.task.Branch)
	a.loading(2, "Uploading commits to remote...")
	a.success(fmt.Sprintf("Pushed to %s/%s.", a.task.Remote, a.task.Branch))
}

func (a *agent) createPR() {
	a.header("CREATING PULL REQUEST")
	a.line("Branch", a.task.Branch)
	a.line("Title", a.task.Title)
	desc := a.task.Desc
	if len(desc) > 40 {
		desc = desc[:40] + "..."
	}
	a.line("Description", desc)
	a.loading(3, "Opening pull request...")
	a.success("Pull request created successfully.")
}

func (a *agent) banner(title string) {
	border := strings.Repeat("=", boxWidth)
	fmt.Fprintf(a.out, "%s\n  %s\n%s\n", border, title, border)
}

func (a *agent) header(title string) {
	fmt.Fprintf(a.out, "\n+%s+\n", strings.Repeat("-", boxWidth-2))
	fmt.Fprintf(a.out, "|  *  %-*s|\n", boxWidth-8, title)
	fmt.Fprintf(a.out, "+%s+\n", strings.Repeat("-", boxWidth-2))
}

func (a *agent) line(label, value string) {
	fmt.Fprintf(a.out, "   ->  %s: %s\n", label, value)
}

func (a *agent) loading(units int, message string) {
	fmt.Fprintf(a.out, "   ..  %s\n", message)
	time.Sleep(time.Duration(units) * stepUnit)
}

func (a *agent) success(message string) {
	fmt.Fprintf(a.out, "   ok  %s\n\n", message)
}
