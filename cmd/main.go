package main

import (
    "github.com/lcainswebdeveloper/shopping-list-challenge/config"
    "github.com/lcainswebdeveloper/shopping-list-challenge/routes"
)

func main() {
    config.InitDB()
    config.SeedGroceries()
    r := routes.SetupRouter()
    r.Run(":8080")
}
