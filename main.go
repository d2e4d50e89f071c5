package main

import (
	"github.com/VeriPay/VeriPay-Backend/api"
)

func main() {
	server := api.NewServer(".")
	server.Start()
}
