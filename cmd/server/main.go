// Command cashbench runs the cashbench API server and prints offline reports
// from its database.
package main

func main() {
	Execute()
}
