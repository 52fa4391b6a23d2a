package main

import "github.com/ValentinKolb/dBytes/cmd"

func main() {
	cmd.Execute()
}
