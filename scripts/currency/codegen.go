package main

import (
	"bufio"
	"bytes"
	"fmt"
	"go/format"
	"os"
	"path/filepath"
	"sort"
	"text/template"

	"gopkg.in/yaml.v3"
)

type currency struct {
	Code                 string `yaml:"code"`
	Num                  string `yaml:"num"`
	Name                 string `yaml:"name"`
	Exponent             int    `yaml:"exponent"`
	SubunitToUnit        int64  `yaml:"subunit_to_unit"`
	Symbol               string `yaml:"symbol"`
	ThousandsSeparator   string `yaml:"thousands_separator"`
	DecimalMark          string `yaml:"decimal_mark"`
	SmallestDenomination int64  `yaml:"smallest_denomination"`
}

func main() {
	// Read the currency records
	currs, err := readYAMLFile(filepath.Join("scripts", "currency", "currency_data.yaml"))
	if err != nil {
		panic(fmt.Errorf("error reading YAML file: %v", err))
	}

	sortCurrencies(currs)

	// Generate Go code from the records using a template
	code, err := generateGoCode(filepath.Join("scripts", "currency", "currency_data.tmpl"), currs)
	if err != nil {
		panic(fmt.Errorf("error generating Go code: %v", err))
	}

	// Write the generated Go code to a file
	err = writeToFile("currency_data.go", code)
	if err != nil {
		panic(fmt.Errorf("error writing to file: %v", err))
	}
}

func readYAMLFile(filename string) ([]currency, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	var currs []currency
	if err := yaml.Unmarshal(data, &currs); err != nil {
		return nil, err
	}
	return currs, nil
}

// sortCurrencies orders records by code, keeping XXX and XTS first.
func sortCurrencies(currs []currency) {
	rank := func(code string) int {
		switch code {
		case "XXX":
			return 0
		case "XTS":
			return 1
		}
		return 2
	}
	sort.Slice(currs, func(i, j int) bool {
		a, b := currs[i].Code, currs[j].Code
		if rank(a) != rank(b) {
			return rank(a) < rank(b)
		}
		return a < b
	})
}

func generateGoCode(filename string, currs []currency) ([]byte, error) {
	tmpl, err := template.New(filepath.Base(filename)).ParseFiles(filename)
	if err != nil {
		return nil, err
	}

	// Execute the template
	var output bytes.Buffer
	err = tmpl.Execute(&output, currs)
	if err != nil {
		return nil, err
	}

	// Format the output as Go code
	formatted, err := format.Source(output.Bytes())
	if err != nil {
		return nil, err
	}
	return formatted, nil
}

func writeToFile(filename string, content []byte) error {
	out, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer func() { _ = out.Close() }()
	writer := bufio.NewWriter(out)
	_, err = writer.Write(content)
	if err != nil {
		return err
	}
	return writer.Flush()
}
