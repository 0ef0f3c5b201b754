package main

import "task-collab.com/task-collab/cmd"

func main() {
	cmd.Execute()
}
