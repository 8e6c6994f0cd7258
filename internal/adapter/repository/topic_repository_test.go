package repository

import (
	"context"
	"errors"
	"testing"
	"testing/fstest"

	"github.com/eslsoft/benkyo/internal/entity"
	"github.com/eslsoft/benkyo/internal/repository"
)

func testTopicsFS() fstest.MapFS {
	return fstest.MapFS{
		"topics.json": {Data: []byte(`{"topics":[
			{"name":"Animals","file":"animals.json"},
			{"name":" Colors ","file":"sub/colors.json"},
			{"name":"Basics","file":"basics.json"}
		]}`)},
		"animals.json": {Data: []byte(`{"questions":[
			{"question":"犬","answer":"dog"},
			{"question":"猫","answer":"cat","alternatives":["Cat"," kitty "]},
			{"question":"","answer":"ghost"}
		]}`)},
		"sub/colors.json": {Data: []byte(`{"questions":[
			{"question":"赤","answer":"red"},
			{"question":"青","answer":"blue"},
			{"question":"白","answer":"white"}
		]}`)},
		"basics.json": {Data: []byte(`{"questions":[{"question":"はい","answer":"yes"}]}`)},
	}
}

func TestTopicRepository_Get(t *testing.T) {
	repo, err := NewTopicRepository(testTopicsFS())
	if err != nil {
		t.Fatalf("NewTopicRepository: %v", err)
	}

	topic, data, err := repo.Get(context.Background(), "  ANIMALS ")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if topic.Name != "Animals" {
		t.Fatalf("unexpected topic: %+v", topic)
	}
	if len(data.Questions) != 2 {
		t.Fatalf("expected invalid question to be dropped, got %d questions", len(data.Questions))
	}
	if alts := data.Questions[1].Alternatives; len(alts) != 1 || alts[0] != "kitty" {
		t.Fatalf("unexpected alternatives: %v", alts)
	}

	data.Questions[0].Answer = "mutated"
	_, again, _ := repo.Get(context.Background(), "animals")
	if again.Questions[0].Answer != "dog" {
		t.Fatalf("Get must return a copy of the stored questions")
	}

	if _, _, err := repo.Get(context.Background(), "Weather"); !errors.Is(err, entity.ErrTopicNotFound) {
		t.Fatalf("expected ErrTopicNotFound, got %v", err)
	}
	if _, _, err := repo.Get(context.Background(), " "); !errors.Is(err, entity.ErrInvalidTopicName) {
		t.Fatalf("expected ErrInvalidTopicName, got %v", err)
	}
}

func TestTopicRepository_List(t *testing.T) {
	repo, err := NewTopicRepository(testTopicsFS())
	if err != nil {
		t.Fatalf("NewTopicRepository: %v", err)
	}
	ctx := context.Background()

	all, total, err := repo.List(ctx, nil)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if total != 3 || all[0].Name != "Animals" || all[1].Name != "Basics" || all[2].Name != "Colors" {
		t.Fatalf("unexpected default listing: %+v", all)
	}

	byCount, _, err := repo.List(ctx, &repository.ListTopicQuery{FilterOrder: repository.FilterOrder{OrderBy: "questions desc"}})
	if err != nil {
		t.Fatalf("List ordered: %v", err)
	}
	if byCount[0].Name != "Colors" || byCount[0].QuestionCount != 3 {
		t.Fatalf("unexpected ordering: %+v", byCount)
	}

	filtered, total, err := repo.List(ctx, &repository.ListTopicQuery{FilterOrder: repository.FilterOrder{Filter: "questions >= 2"}})
	if err != nil {
		t.Fatalf("List filtered: %v", err)
	}
	if total != 2 || len(filtered) != 2 {
		t.Fatalf("expected 2 topics with at least 2 questions, got %+v", filtered)
	}

	prefixed, _, err := repo.List(ctx, &repository.ListTopicQuery{FilterOrder: repository.FilterOrder{Filter: "name.startsWith('co')"}})
	if err != nil {
		t.Fatalf("List prefixed: %v", err)
	}
	if len(prefixed) != 1 || prefixed[0].Name != "Colors" {
		t.Fatalf("unexpected prefix match: %+v", prefixed)
	}

	paged, total, err := repo.List(ctx, &repository.ListTopicQuery{Pagination: repository.Pagination{PageNo: 2, PageSize: 2}})
	if err != nil {
		t.Fatalf("List paged: %v", err)
	}
	if total != 3 || len(paged) != 1 || paged[0].Name != "Colors" {
		t.Fatalf("unexpected page: total=%d %+v", total, paged)
	}

	far, total, err := repo.List(ctx, &repository.ListTopicQuery{Pagination: repository.Pagination{PageNo: 2147485, PageSize: 1000}})
	if err != nil {
		t.Fatalf("List far page: %v", err)
	}
	if total != 3 || len(far) != 0 {
		t.Fatalf("expected empty page past the end: total=%d %+v", total, far)
	}

	if _, _, err := repo.List(ctx, &repository.ListTopicQuery{FilterOrder: repository.FilterOrder{Filter: "name == 'a' || name == 'b'"}}); !errors.Is(err, entity.ErrInvalidFilter) {
		t.Fatalf("expected ErrInvalidFilter, got %v", err)
	}
}

func TestNewTopicRepository_Errors(t *testing.T) {
	missingFile := fstest.MapFS{"topics.json": {Data: []byte(`{"topics":[{"name":"A","file":"a.json"}]}`)}}
	if _, err := NewTopicRepository(missingFile); err == nil {
		t.Fatalf("expected error for missing topic file")
	}
	dup := fstest.MapFS{
		"topics.json": {Data: []byte(`{"topics":[{"name":"A","file":"a.json"},{"name":"a","file":"a.json"}]}`)},
		"a.json":      {Data: []byte(`{"questions":[]}`)},
	}
	if _, err := NewTopicRepository(dup); !errors.Is(err, entity.ErrInvalidTopicName) {
		t.Fatalf("expected ErrInvalidTopicName for duplicate topic, got %v", err)
	}
	if _, err := NewTopicRepository(fstest.MapFS{}); err == nil {
		t.Fatalf("expected error for missing index")
	}
}

func TestOpenTopicRepository_Embedded(t *testing.T) {
	repo, err := OpenTopicRepository("")
	if err != nil {
		t.Fatalf("OpenTopicRepository: %v", err)
	}
	topics, total, err := repo.List(context.Background(), nil)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if total == 0 {
		t.Fatalf("expected embedded topics")
	}
	for _, topic := range topics {
		if topic.QuestionCount == 0 {
			t.Fatalf("embedded topic %q has no questions", topic.Name)
		}
	}
	if _, err := OpenTopicRepository(t.TempDir()); err == nil {
		t.Fatalf("expected error for directory without %s", TopicsIndexFile)
	}
}
