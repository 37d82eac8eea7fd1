package tasks

import (
	"lexema.com/postag/redis"
)

type Client struct {
	Tags TagTasks
}

// NewClient is the preferred way of working with task documents.
func NewClient() (Client, error) {
	tagsRedisClient, err := redis.NewClient(TagTasksDB)
	if err != nil {
		return Client{}, err
	}
	return Client{
		Tags: TagTasks{client: tagsRedisClient},
	}, nil
}

func (client *Client) Close() {
	_ = client.Tags.client.Close()
}
