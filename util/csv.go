package util

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"reflect"
	"strconv"

	"golang.org/x/exp/slog"
)

type _CSVColumn struct {
	field  int
	column int
	kind   reflect.Kind
}

// Decodes the rows of a delimited file with a header line into values of
// the struct type T. Fields are matched to columns by their csv tag, untagged
// fields and unknown columns are skipped, empty cells keep the zero value.
// Rows with a wrong field count are skipped. Reading stops early once fn
// returns false.
func ReadCSV[T any](r io.Reader, delimiter rune, fn func(T) bool) error {
	reader := csv.NewReader(r)
	reader.Comma = delimiter
	header, err := reader.Read()
	if err != nil {
		return fmt.Errorf("failed to read csv header: %w", err)
	}
	name_row_mapping := NewDict[string, int](len(header))
	for i, name := range header {
		name_row_mapping[name] = i
	}

	var val T
	typ := reflect.TypeOf(val)
	if typ.Kind() != reflect.Struct {
		panic("csv rows can only be decoded into structs")
	}
	columns := NewList[_CSVColumn](typ.NumField())
	for i := 0; i < typ.NumField(); i++ {
		field := typ.Field(i)
		tag := field.Tag.Get("csv")
		if tag == "" || !name_row_mapping.ContainsKey(tag) {
			continue
		}
		kind := field.Type.Kind()
		switch kind {
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
			kind = reflect.Int
		case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
			kind = reflect.Uint
		case reflect.Float32, reflect.Float64:
			kind = reflect.Float64
		case reflect.Bool, reflect.String:
		default:
			continue
		}
		columns.Add(_CSVColumn{field: i, column: name_row_mapping[tag], kind: kind})
	}

	line := 1
	for {
		record, err := reader.Read()
		line += 1
		if err == io.EOF {
			return nil
		}
		if errors.Is(err, csv.ErrFieldCount) {
			slog.Warn("skipping csv row with wrong field count", "line", line)
			continue
		}
		if err != nil {
			return fmt.Errorf("failed to read csv line %v: %w", line, err)
		}
		row := reflect.New(typ).Elem()
		for _, c := range columns {
			value := record[c.column]
			if value == "" {
				continue
			}
			if err := _SetField(row.Field(c.field), c.kind, value); err != nil {
				return fmt.Errorf("csv line %v, column %v: %w", line, header[c.column], err)
			}
		}
		if !fn(row.Interface().(T)) {
			return nil
		}
	}
}

func ReadCSVFromFile[T any](filename string, delimiter rune, fn func(T) bool) error {
	file, err := os.Open(filename)
	if err != nil {
		return err
	}
	defer file.Close()
	return ReadCSV[T](file, delimiter, fn)
}

func _SetField(f reflect.Value, kind reflect.Kind, value string) error {
	switch kind {
	case reflect.Bool:
		v, err := strconv.ParseBool(value)
		if err != nil {
			return err
		}
		f.SetBool(v)
	case reflect.Int:
		v, err := strconv.ParseInt(value, 10, f.Type().Bits())
		if err != nil {
			return err
		}
		f.SetInt(v)
	case reflect.Uint:
		v, err := strconv.ParseUint(value, 10, f.Type().Bits())
		if err != nil {
			return err
		}
		f.SetUint(v)
	case reflect.Float64:
		v, err := strconv.ParseFloat(value, f.Type().Bits())
		if err != nil {
			return err
		}
		f.SetFloat(v)
	case reflect.String:
		f.SetString(value)
	}
	return nil
}
