/*
 * table.go, part of atomphys.
 *
 *
 * Copyright 2024 The atomphys authors
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 *
 */

package main

import (
	"encoding/csv"
	"fmt"
	"io"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/facette/natsort"
)

//Table is a set of rows, labelled by their first column.
type Table struct {
	Columns []string
	Rows    [][]string
}

func (T *Table) Less(i, j int) bool {
	return natsort.Compare(T.Rows[i][0], T.Rows[j][0])
}

func (T *Table) Len() int { return len(T.Rows) }

func (T *Table) Swap(i, j int) { T.Rows[i], T.Rows[j] = T.Rows[j], T.Rows[i] }

//Add appends a row.
func (T *Table) Add(cells ...string) {
	T.Rows = append(T.Rows, cells)
}

//WriteCSV writes the table as CSV, rows sorted naturally by label, so "5P" comes before "10P".
func (T *Table) WriteCSV(w io.Writer) error {
	sort.Stable(T)
	cw := csv.NewWriter(w)
	if err := cw.Write(T.Columns); err != nil {
		return err
	}
	if err := cw.WriteAll(T.Rows); err != nil {
		return err
	}
	return cw.Error()
}

//WriteText writes the table aligned in columns, in the order the rows were added.
func (T *Table) WriteText(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, strings.Join(T.Columns, "\t"))
	for _, r := range T.Rows {
		fmt.Fprintln(tw, strings.Join(r, "\t"))
	}
	return tw.Flush()
}

//Write writes the table in the given format, "csv" or "table".
func (T *Table) Write(w io.Writer, format string) error {
	if format == "csv" {
		return T.WriteCSV(w)
	}
	return T.WriteText(w)
}
