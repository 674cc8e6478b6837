package main

import (
	"fmt"
	"log"
	"os"

	"aavevar/cmd"

	_ "github.com/lib/pq"
)

func main() {
	fmt.Println(os.Getenv("commit_hash"))
	deps, err := cmd.InitializeDependencies()
	if err != nil {
		log.Fatal(err)
	}
	defer cmd.CloseDependencies(deps)
	err = deps.NewApiHandler().StartApi(3009)
	if err != nil {
		log.Fatal(err)
	}
}
