package repository

import (
	"cmp"
	"context"
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path"
	"slices"
	"strings"

	"github.com/samber/lo"

	"github.com/eslsoft/benkyo/internal/entity"
	"github.com/eslsoft/benkyo/internal/repository"
	"github.com/eslsoft/benkyo/pkg/filterexpr"
)

// TopicsIndexFile is the index every topic source must contain.
const TopicsIndexFile = "topics.json"

//go:embed topics/*.json
var embeddedTopics embed.FS

// DefaultTopicsFS returns the topic files bundled with the binary.
func DefaultTopicsFS() fs.FS {
	sub, err := fs.Sub(embeddedTopics, "topics")
	if err != nil {
		panic(fmt.Sprintf("benkyo: embedded topics: %v", err))
	}
	return sub
}

type topicEntry struct {
	topic entity.Topic
	data  entity.TopicData
}

type topicRepository struct {
	entries []*topicEntry
	byName  map[string]*topicEntry
}

// OpenTopicRepository loads topics from dir, or from the embedded set when dir is empty.
func OpenTopicRepository(dir string) (repository.TopicRepository, error) {
	if strings.TrimSpace(dir) == "" {
		return NewTopicRepository(DefaultTopicsFS())
	}
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("open topics dir: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("open topics dir: %s is not a directory", dir)
	}
	return NewTopicRepository(os.DirFS(dir))
}

// NewTopicRepository reads the topic index and every topic file from fsys up front.
func NewTopicRepository(fsys fs.FS) (repository.TopicRepository, error) {
	var index entity.TopicsConfig
	if err := readJSON(fsys, TopicsIndexFile, &index); err != nil {
		return nil, err
	}

	r := &topicRepository{byName: make(map[string]*topicEntry, len(index.Topics))}
	for _, t := range index.Topics {
		t.Name = strings.TrimSpace(t.Name)
		t.File = strings.TrimSpace(t.File)
		key := entity.NormalizeTopicName(t.Name)
		if key == "" || t.File == "" {
			return nil, fmt.Errorf("%w: index entry %+v", entity.ErrInvalidTopicName, t)
		}
		if _, dup := r.byName[key]; dup {
			return nil, fmt.Errorf("%w: duplicate topic %q", entity.ErrInvalidTopicName, t.Name)
		}

		var data entity.TopicData
		if err := readJSON(fsys, path.Clean(t.File), &data); err != nil {
			return nil, fmt.Errorf("topic %q: %w", t.Name, err)
		}
		data.Questions = lo.Filter(
			lo.Map(data.Questions, func(q entity.Question, _ int) entity.Question { return q.Normalize() }),
			func(q entity.Question, _ int) bool { return q.Valid() },
		)

		entry := &topicEntry{topic: t, data: data}
		r.entries = append(r.entries, entry)
		r.byName[key] = entry
	}
	return r, nil
}

func readJSON(fsys fs.FS, name string, v any) error {
	raw, err := fs.ReadFile(fsys, name)
	if err != nil {
		return fmt.Errorf("read %s: %w", name, err)
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return fmt.Errorf("parse %s: %w", name, err)
	}
	return nil
}

func (r *topicRepository) List(ctx context.Context, query *repository.ListTopicQuery) ([]entity.TopicSummary, int64, error) {
	if query == nil {
		query = &repository.ListTopicQuery{}
	}
	if err := filterexpr.Bind(query, query, listTopicsSchema); err != nil {
		return nil, 0, fmt.Errorf("%w: %v", entity.ErrInvalidFilter, err)
	}

	names := normalizeLowerStrings(query.Names)
	matched := lo.FilterMap(r.entries, func(e *topicEntry, _ int) (entity.TopicSummary, bool) {
		summary := entity.TopicSummary{Topic: e.topic, QuestionCount: len(e.data.Questions)}
		return summary, matchesTopic(summary, query, names)
	})

	slices.SortStableFunc(matched, func(a, b entity.TopicSummary) int {
		if c := compareTopics(a, b, query.PrimaryKey, query.PrimaryDesc); c != 0 {
			return c
		}
		return compareTopics(a, b, query.SecondaryKey, query.SecondaryDesc)
	})

	total := int64(len(matched))
	if query.PageSize > 0 {
		if query.PageNo <= 0 {
			query.PageNo = 1
		}
		start := int(min(query.Offset(), total))
		end := min(start+int(query.PageSize), len(matched))
		matched = matched[start:end]
	}
	return matched, total, nil
}

func matchesTopic(s entity.TopicSummary, q *repository.ListTopicQuery, names []string) bool {
	name := entity.NormalizeTopicName(s.Name)
	if q.Name != nil && name != entity.NormalizeTopicName(*q.Name) {
		return false
	}
	if q.NamePrefix != nil && !strings.HasPrefix(name, entity.NormalizeTopicName(*q.NamePrefix)) {
		return false
	}
	if len(names) > 0 && !lo.Contains(names, name) {
		return false
	}
	if q.MinQuestions != nil && s.QuestionCount < *q.MinQuestions {
		return false
	}
	if q.MaxQuestions != nil && s.QuestionCount > *q.MaxQuestions {
		return false
	}
	return true
}

func compareTopics(a, b entity.TopicSummary, key string, desc bool) int {
	var c int
	switch key {
	case orderKeyQuestions:
		c = cmp.Compare(a.QuestionCount, b.QuestionCount)
	default:
		c = cmp.Compare(entity.NormalizeTopicName(a.Name), entity.NormalizeTopicName(b.Name))
	}
	if desc {
		return -c
	}
	return c
}

func (r *topicRepository) Get(ctx context.Context, name string) (*entity.Topic, *entity.TopicData, error) {
	key := entity.NormalizeTopicName(name)
	if key == "" {
		return nil, nil, entity.ErrInvalidTopicName
	}
	entry, ok := r.byName[key]
	if !ok {
		return nil, nil, fmt.Errorf("%w: %q", entity.ErrTopicNotFound, name)
	}
	topic := entry.topic
	data := entity.TopicData{Questions: slices.Clone(entry.data.Questions)}
	return &topic, &data, nil
}
