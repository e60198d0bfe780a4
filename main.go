package main

import "github.com/ValentinKolb/dSER/cmd"

func main() {
	cmd.Execute()
}
