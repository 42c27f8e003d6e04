package population

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"uhi-engine/internal/model"
)

// columnSpec declares how one supported population column is handled at
// the boundary. Columns not listed here are ignored; absent optional
// columns degrade to their zero-valued contribution instead of failing.
// economic marks the columns of which at least one must be present for
// the table to be usable at all.
type columnSpec struct {
	name     string
	economic bool
}

var columnPolicy = []columnSpec{
	{name: "Age"},
	{name: "Gender"},
	{name: "EmploymentStatus"},
	{name: "MonthlyWage", economic: true},
	{name: "SpouseInSystem"},
	{name: "ChildrenCount"},
	{name: "EstimatedAnnualCost", economic: true},
}

// LoadCSV parses a population table from CSV. The first row must be a
// header naming the population columns; order is free and
// unknown columns are skipped. Any malformed value is a single
// validation error for the whole table, never a partial result.
func LoadCSV(r io.Reader) (model.Population, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return model.Population{}, fmt.Errorf("population table: cannot read header: %w", err)
	}

	index := make(map[string]int, len(header))
	for i, name := range header {
		index[strings.TrimSpace(name)] = i
	}

	var cols model.Columns
	hasEconomic := false
	for _, spec := range columnPolicy {
		_, present := index[spec.name]
		if present && spec.economic {
			hasEconomic = true
		}
		switch spec.name {
		case "EmploymentStatus":
			cols.EmploymentStatus = present
		case "MonthlyWage":
			cols.MonthlyWage = present
		case "SpouseInSystem":
			cols.SpouseInSystem = present
		case "ChildrenCount":
			cols.ChildrenCount = present
		case "EstimatedAnnualCost":
			cols.EstimatedAnnualCost = present
		}
	}
	if !hasEconomic {
		return model.Population{}, fmt.Errorf("population table: no economic columns (need MonthlyWage or EstimatedAnnualCost)")
	}

	var members []model.Individual
	line := 1 // header occupies line 1
	for {
		line++
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return model.Population{}, fmt.Errorf("population table: row %d: %w", line, err)
		}

		ind, err := parseRow(record, index, cols)
		if err != nil {
			return model.Population{}, fmt.Errorf("population table: row %d: %w", line, err)
		}
		members = append(members, ind)
	}

	if members == nil {
		members = []model.Individual{}
	}
	return model.Population{Members: members, Columns: cols}, nil
}

func parseRow(record []string, index map[string]int, cols model.Columns) (model.Individual, error) {
	ind := model.Individual{EmploymentStatus: model.StatusUnknown}

	if i, ok := index["Age"]; ok {
		age, err := strconv.Atoi(strings.TrimSpace(record[i]))
		if err != nil {
			return ind, fmt.Errorf("invalid Age %q", record[i])
		}
		ind.Age = age
	}
	if i, ok := index["Gender"]; ok {
		ind.Gender = model.Gender(strings.TrimSpace(record[i]))
	}
	if cols.EmploymentStatus {
		s := model.EmploymentStatus(strings.TrimSpace(record[index["EmploymentStatus"]]))
		switch s {
		case model.StatusEmployee, model.StatusSelfEmployed, model.StatusNonCapable:
			ind.EmploymentStatus = s
		default:
			ind.EmploymentStatus = model.StatusUnknown
		}
	}
	if cols.MonthlyWage {
		wage, err := strconv.ParseFloat(strings.TrimSpace(record[index["MonthlyWage"]]), 64)
		if err != nil {
			return ind, fmt.Errorf("invalid MonthlyWage %q", record[index["MonthlyWage"]])
		}
		ind.MonthlyWage = wage
	}
	if cols.SpouseInSystem {
		b, err := parseBool(record[index["SpouseInSystem"]])
		if err != nil {
			return ind, err
		}
		ind.SpouseInSystem = b
	}
	if cols.ChildrenCount {
		n, err := strconv.Atoi(strings.TrimSpace(record[index["ChildrenCount"]]))
		if err != nil {
			return ind, fmt.Errorf("invalid ChildrenCount %q", record[index["ChildrenCount"]])
		}
		ind.ChildrenCount = n
	}
	if cols.EstimatedAnnualCost {
		cost, err := strconv.ParseFloat(strings.TrimSpace(record[index["EstimatedAnnualCost"]]), 64)
		if err != nil {
			return ind, fmt.Errorf("invalid EstimatedAnnualCost %q", record[index["EstimatedAnnualCost"]])
		}
		ind.EstimatedAnnualCost = cost
	}

	return ind, nil
}

func parseBool(s string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "true", "1", "yes":
		return true, nil
	case "false", "0", "no", "":
		return false, nil
	}
	return false, fmt.Errorf("invalid SpouseInSystem %q", s)
}
