// Package holidays holds the public holiday tables of the supported
// jurisdictions and a registry to look them up by code.
//
// Every table is a declarative list of calendar.Rule values; the date
// arithmetic itself lives in package calendar.
package holidays
