package main

import "github.com/quocvuong92/excavator/cmd"

func main() {
	cmd.Execute()
}
