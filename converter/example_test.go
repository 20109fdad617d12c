package converter_test

import (
	"fmt"
	"log"

	"github.com/erraggy/postman2oas/converter"
	"github.com/erraggy/postman2oas/openapi"
	"github.com/erraggy/postman2oas/postman"
)

// Example demonstrates converting a collection file with functional options.
func Example() {
	result, err := converter.ConvertWithOptions(
		converter.WithFilePath("testdata/petstore.postman_collection.json"),
		converter.WithFolderSegments(false),
	)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("Title: %s\n", result.Document.Info.Title)
	fmt.Printf("Server: %s\n", result.Document.Servers[0].URL)
	result.Document.Operations(func(path, method string, op *openapi.Operation) {
		fmt.Printf("%s %s -> %s\n", method, path, op.OperationID)
	})
	// Output:
	// Title: Petstore
	// Server: https://petstore.example.com/v1
	// get /pets -> listPets
	// post /pets -> createPet
	// get /pets/{petId} -> getPet
	// put /avatar -> uploadAvatar
	// get /health -> health
}

// Example_convert shows the package-level Convert on an inline collection.
func Example_convert() {
	coll, err := postman.Parse([]byte(`{
		"info": {"name": "Todo"},
		"auth": {"type": "bearer"},
		"item": [
			{"name": "items", "item": [
				{"name": "List items", "request": {"method": "GET", "url": "https://todo.example.com/items"}}
			]}
		]
	}`))
	if err != nil {
		log.Fatal(err)
	}

	result, err := converter.Convert(coll)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(result.Document.Paths.Keys())
	fmt.Println(result.Document.Components.SecuritySchemes["bearerAuth"].Scheme)
	fmt.Printf("Operations: %d, Warnings: %d\n", result.Stats.Operations, result.WarningCount)
	// Output:
	// [/items/items]
	// bearer
	// Operations: 1, Warnings: 0
}

// Example_strictMode shows conversion failing on warnings in strict mode.
func Example_strictMode() {
	c := converter.New()
	c.StrictMode = true

	_, err := c.ConvertBytes([]byte(`{"item": [
		{"name": "copy", "request": {"method": "COPY", "url": "https://x.io/files"}}
	]}`))
	fmt.Println(err)
	// Output:
	// converter: conversion failed in strict mode: 1 warning(s)
}

// Example_yaml shows writing the converted document as YAML.
func Example_yaml() {
	result, err := converter.New().ConvertBytes([]byte(`
info:
  name: Ping
item:
  - name: Ping
    request:
      method: GET
      url: https://ping.example.com/ping
`))
	if err != nil {
		log.Fatal(err)
	}
	data, err := openapi.MarshalYAML(result.Document)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(len(data) > 0)
	fmt.Println(result.Document.Paths.Keys()[0])
	// Output:
	// true
	// /ping
}
