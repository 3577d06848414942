package update

import (
	"context"
	"encoding/json"

	es7 "github.com/olivere/elastic/v7"
	log "github.com/sirupsen/logrus"
)

type elasticsearch struct {
	client *es7.Client
}

func newElasticsearch(client *es7.Client) *elasticsearch {
	return &elasticsearch{client}
}

func (es *elasticsearch) indexDocument(ctx context.Context, index, id string, document json.RawMessage) (string, error) {
	response, err := es.client.Index().
		Index(index).
		Id(id).
		BodyString(string(document)).
		Do(ctx)
	if err != nil {
		return "", err
	}
	log.Debugln(logTag, ": document", id, response.Result, "in", index)
	return response.Result, nil
}

func (es *elasticsearch) deleteDocument(ctx context.Context, index, id string) error {
	_, err := es.client.Delete().
		Index(index).
		Id(id).
		Do(ctx)
	if err != nil {
		return err
	}
	log.Debugln(logTag, ": document", id, "deleted from", index)
	return nil
}
