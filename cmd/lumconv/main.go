// Command lumconv converts a ';'-delimited lighting table into a JSON array.
package main

func main() {
	execute()
}
