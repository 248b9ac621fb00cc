package model

import (
	"fmt"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/service/dynamodb"
	"github.com/cockroachdb/apd/v3"
)

// Decimal is a money amount. Billing and discount figures go through
// arbitrary-precision decimal arithmetic so that summing a result set never
// loses cents to binary floats. Stored as a DynamoDB Number and rendered as
// a plain JSON number.
type Decimal struct {
	value apd.Decimal
}

// ParseDecimal parses s as a decimal. NaN and Infinity parse successfully
// but are coerced to zero, matching the ingestion policy for spreadsheet
// artifacts.
func ParseDecimal(s string) (Decimal, error) {
	var d apd.Decimal
	_, _, err := d.SetString(s)
	if err != nil {
		return Decimal{}, fmt.Errorf("invalid decimal %q: %w", s, err)
	}
	if d.Form != apd.Finite {
		return Decimal{}, nil
	}
	return Decimal{value: d}, nil
}

func (d Decimal) String() string {
	return d.value.String()
}

func (d Decimal) IsZero() bool {
	return d.value.IsZero()
}

func (d Decimal) Cmp(other Decimal) int {
	return d.value.Cmp(&other.value)
}

// Add returns the sum of d and other.
func (d Decimal) Add(other Decimal) Decimal {
	var result apd.Decimal
	ctx := apd.BaseContext.WithPrecision(34)
	ctx.Add(&result, &d.value, &other.value)
	return Decimal{value: result}
}

func (d Decimal) MarshalJSON() ([]byte, error) {
	return []byte(d.value.String()), nil
}

func (d *Decimal) UnmarshalJSON(b []byte) error {
	s := string(b)
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		s = s[1 : len(s)-1]
	}
	parsed, err := ParseDecimal(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

func (d Decimal) MarshalDynamo() (*dynamodb.AttributeValue, error) {
	return &dynamodb.AttributeValue{N: aws.String(d.value.String())}, nil
}

func (d *Decimal) UnmarshalDynamo(av *dynamodb.AttributeValue) error {
	if av == nil || av.N == nil {
		*d = Decimal{}
		return nil
	}
	parsed, err := ParseDecimal(*av.N)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
