// Package db looks up human readable chord labels stored in DynamoDB.
package db

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/dynamodb"
	"github.com/aws/aws-sdk-go/service/dynamodb/dynamodbiface"
	"github.com/jsphweid/twelvetet/model"
	"github.com/jsphweid/twelvetet/util"
)

// DynamoDB caps BatchGetItem at 100 keys.
const maxBatch = 100

// rounds of resubmitting keys DynamoDB left unprocessed
const maxRetries = 3

type Client struct {
	svc   dynamodbiface.DynamoDBAPI
	table string
}

func New(endpoint string, region string, table string) (*Client, error) {
	if endpoint == "" {
		return nil, errors.New("no DynamoDB endpoint configured")
	}
	sess, err := session.NewSession(&aws.Config{
		Region:   aws.String(region),
		Endpoint: aws.String(endpoint),
	})
	if err != nil {
		return nil, fmt.Errorf("could not create a new DynamoDB session: %w", err)
	}
	return NewWithAPI(dynamodb.New(sess), table), nil
}

func NewWithAPI(svc dynamodbiface.DynamoDBAPI, table string) *Client {
	return &Client{svc: svc, table: table}
}

// GetChordLabels fetches labels for chord keys as built by chord.CreateChordKey.
// Keys without a stored label are absent from the result.
func (c *Client) GetChordLabels(keys []string) (map[string]model.ChordLabel, error) {
	res := make(map[string]model.ChordLabel)

	for start := 0; start < len(keys); start += maxBatch {
		batch := keys[start:util.Min(start+maxBatch, len(keys))]

		var attrKeys []map[string]*dynamodb.AttributeValue
		for _, key := range batch {
			attrKeys = append(attrKeys, map[string]*dynamodb.AttributeValue{
				"PK": {S: aws.String(key)},
			})
		}
		requests := map[string]*dynamodb.KeysAndAttributes{
			c.table: {Keys: attrKeys},
		}
		for attempt := 0; len(requests) > 0; attempt++ {
			if attempt > maxRetries {
				var pending int
				if ka := requests[c.table]; ka != nil {
					pending = len(ka.Keys)
				}
				slog.Warn("db: giving up on unprocessed chord keys", "table", c.table, "keys", pending)
				break
			}
			out, err := c.svc.BatchGetItem(&dynamodb.BatchGetItemInput{RequestItems: requests})
			if err != nil {
				return nil, fmt.Errorf("error from DynamoDB: %w", err)
			}

			for _, item := range out.Responses[c.table] {
				label, ok := parseLabel(item)
				if !ok {
					slog.Warn("db: skipping malformed chord label", "table", c.table)
					continue
				}
				res[label.Key] = label
			}
			requests = out.UnprocessedKeys
		}
	}

	return res, nil
}

func parseLabel(item map[string]*dynamodb.AttributeValue) (model.ChordLabel, bool) {
	var label model.ChordLabel
	pk, name := item["PK"], item["Name"]
	if pk == nil || pk.S == nil || name == nil || name.S == nil {
		return label, false
	}
	label.Key = *pk.S
	label.Name = *name.S
	if roman := item["Roman"]; roman != nil && roman.S != nil {
		label.Roman = *roman.S
	}
	return label, true
}
