// Package query parses and applies single-condition filters and
// single-function aggregates over product records.
//
// # Filter Conditions
//
// A condition is one binary comparison written as field, operator and
// value with no separator, for example:
//
//	price>1000
//	rating<4.7
//	brand=apple
//
// The operators < and > compare numeric fields. The = operator compares
// the textual form of the field value with the textual form of the value,
// so rating=4.6 matches a rating of 4.6 and price=0999 matches 999.
//
// Parse and apply a condition:
//
//	cond, err := query.ParseCondition("price>1000")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	expensive := query.ApplyFilter(products, cond)
//
// # Aggregates
//
// An aggregate expression names a numeric field and one of min, max or
// avg:
//
//	agg, err := query.Aggregate(products, "price=avg")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(agg.Mean, agg.Records[0].Name)
//
// Every aggregate yields exactly one product. For avg that is the product
// whose value lies closest to the mean; the mean itself is reported in
// Aggregation.Mean.
//
// # Errors
//
// Parsing errors wrap ErrUnknownOperator, ErrTypeMismatch,
// ErrValueConversion, ErrUnknownFunction or record.ErrUnknownField.
// Aggregating an empty slice fails with ErrEmptyInput.
package query
