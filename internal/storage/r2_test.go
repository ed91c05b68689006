package storage

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"findarestaurant/internal/dataset"

	"github.com/aws/aws-sdk-go-v2/service/s3"
)

type fakeGetter struct {
	objects map[string]string
	lastKey string
}

func (f *fakeGetter) GetObject(ctx context.Context, in *s3.GetObjectInput, opts ...func(*s3.Options)) (*s3.GetObjectOutput, error) {
	f.lastKey = *in.Bucket + "/" + *in.Key
	body, ok := f.objects[f.lastKey]
	if !ok {
		return nil, errors.New("NoSuchKey")
	}
	return &s3.GetObjectOutput{Body: io.NopCloser(strings.NewReader(body))}, nil
}

func TestObjectSource_LoadsThroughDatasetLoader(t *testing.T) {
	fake := &fakeGetter{objects: map[string]string{
		"datasets/zomato.csv": "City,Votes\nDelhi,3\n",
	}}
	client := &R2Client{client: fake, bucket: "datasets"}

	var src dataset.Source = client.Object("zomato.csv")

	tab, err := dataset.Load(context.Background(), src)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tab.Len() != 1 || tab.Columns[0] != "City" {
		t.Fatalf("unexpected table: %+v", tab)
	}
	if src.String() != "r2://datasets/zomato.csv" {
		t.Errorf("unexpected source name %q", src.String())
	}
}

func TestObjectSource_MissingObject(t *testing.T) {
	client := &R2Client{client: &fakeGetter{}, bucket: "datasets"}

	_, err := dataset.Load(context.Background(), client.Object("missing.csv"))

	var srcErr *dataset.DataSourceError
	if !errors.As(err, &srcErr) {
		t.Fatalf("expected DataSourceError, got %v", err)
	}
}

func TestNewR2Client_RequiresConfig(t *testing.T) {
	cases := []Config{
		{},
		{Bucket: "b"},
		{Bucket: "b", Endpoint: "https://example.r2.cloudflarestorage.com"},
	}
	for _, c := range cases {
		if _, err := NewR2Client(context.Background(), c); err == nil {
			t.Errorf("expected error for config %+v", c)
		}
	}
}
