package es

import (
	"context"
	"encoding/json"
	"strconv"

	"Nestling.com/cmd/model"
	"Nestling.com/config"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/olivere/elastic/v7"
	"github.com/pkg/errors"
)

var esClient *elastic.Client

const mapping = `{
	"mappings": {
		"properties": {
			"post_id":   {"type": "long"},
			"author_id": {"type": "long"},
			"title":     {"type": "text"},
			"content":   {"type": "text"},
			"tag":       {"type": "keyword"},
			"created_at":{"type": "keyword"}
		}
	}
}`

// PostDoc 写入索引的文档，只带检索需要的字段
type PostDoc struct {
	PostId    int64  `json:"post_id"`
	AuthorId  int64  `json:"author_id"`
	Title     string `json:"title"`
	Content   string `json:"content"`
	Tag       string `json:"tag"`
	CreatedAt string `json:"created_at"`
}

func InitEs() error {
	var err error
	esClient, err = elastic.NewClient(
		elastic.SetURL(config.ConfigInfo.Elastic.Addr),
		elastic.SetSniff(false),
	)
	if err != nil {
		hlog.Errorf("Failed to create elastic client: %v", err)
		return err
	}

	ctx := context.Background()
	index := config.ConfigInfo.Elastic.Index
	exists, err := esClient.IndexExists(index).Do(ctx)
	if err != nil {
		return errors.Wrapf(err, "check index failed")
	}
	if !exists {
		if _, err = esClient.CreateIndex(index).BodyString(mapping).Do(ctx); err != nil {
			return errors.Wrapf(err, "create index failed")
		}
	}
	hlog.Info("Connect Elastic Success")
	return nil
}

func IndexPost(ctx context.Context, post *model.Post) error {
	doc := &PostDoc{
		PostId:    post.PostId,
		AuthorId:  post.AuthorId,
		Title:     post.Title,
		Content:   post.Content,
		Tag:       post.Tag,
		CreatedAt: post.CreatedAt,
	}
	_, err := esClient.Index().
		Index(config.ConfigInfo.Elastic.Index).
		Id(docId(post.PostId)).
		BodyJson(doc).
		Do(ctx)
	if err != nil {
		return errors.Wrapf(err, "IndexPost failed")
	}
	return nil
}

func DeletePost(ctx context.Context, postId int64) error {
	_, err := esClient.Delete().
		Index(config.ConfigInfo.Elastic.Index).
		Id(docId(postId)).
		Do(ctx)
	if err != nil && !elastic.IsNotFound(err) {
		return errors.Wrapf(err, "es.DeletePost failed")
	}
	return nil
}

func docId(postId int64) string {
	return strconv.FormatInt(postId, 10)
}

// SearchPosts 标题和正文的全文检索，标题权重更高
func SearchPosts(ctx context.Context, keyword string, offset, limit int64) ([]*PostDoc, int64, error) {
	query := elastic.NewMultiMatchQuery(keyword, "title^2", "content", "tag")
	res, err := esClient.Search().
		Index(config.ConfigInfo.Elastic.Index).
		Query(query).
		From(int(offset)).Size(int(limit)).
		Do(ctx)
	if err != nil {
		return nil, 0, errors.Wrapf(err, "SearchPosts failed")
	}

	docs := make([]*PostDoc, 0, len(res.Hits.Hits))
	for _, hit := range res.Hits.Hits {
		var doc PostDoc
		if err := json.Unmarshal(hit.Source, &doc); err != nil {
			hlog.Warnf("unmarshal post doc failed: %v", err)
			continue
		}
		docs = append(docs, &doc)
	}
	return docs, res.TotalHits(), nil
}
