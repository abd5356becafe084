package mongo

import (
	"context"
	"time"

	"github.com/aussiebroadwan/taskboard/internal/taskboard/domain"
	"github.com/aussiebroadwan/taskboard/internal/taskboard/store"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type shareDoc struct {
	UserID     string    `bson:"user_id"`
	Permission string    `bson:"permission"`
	SharedAt   time.Time `bson:"shared_at"`
}

type taskDoc struct {
	ID           string     `bson:"_id"`
	Seq          int64      `bson:"seq"`
	Title        string     `bson:"title"`
	Description  string     `bson:"description"`
	Status       string     `bson:"status"`
	Priority     string     `bson:"priority"`
	PriorityRank int        `bson:"priority_rank"` // sorts by severity, not spelling
	DueDate      *time.Time `bson:"due_date"`
	OwnerID      string     `bson:"owner_id"`
	SharedWith   []shareDoc `bson:"shared_with"`
	Tags         []string   `bson:"tags"`
	IsArchived   bool       `bson:"is_archived"`
	CompletedAt  *time.Time `bson:"completed_at"`
	Version      int64      `bson:"version"`
	CreatedAt    time.Time  `bson:"created_at"`
	UpdatedAt    time.Time  `bson:"updated_at"`
}

func toTaskDoc(t domain.Task) taskDoc {
	shares := make([]shareDoc, len(t.SharedWith))
	for i, s := range t.SharedWith {
		shares[i] = shareDoc{UserID: s.UserID, Permission: string(s.Permission), SharedAt: s.SharedAt}
	}
	tags := t.Tags
	if tags == nil {
		tags = []string{}
	}

	return taskDoc{
		ID:           t.ID,
		Seq:          t.Seq,
		Title:        t.Title,
		Description:  t.Description,
		Status:       string(t.Status),
		Priority:     string(t.Priority),
		PriorityRank: t.Priority.Rank(),
		DueDate:      t.DueDate,
		OwnerID:      t.OwnerID,
		SharedWith:   shares,
		Tags:         tags,
		IsArchived:   t.IsArchived,
		CompletedAt:  t.CompletedAt,
		Version:      t.Version,
		CreatedAt:    t.CreatedAt,
		UpdatedAt:    t.UpdatedAt,
	}
}

func (d taskDoc) toDomain() domain.Task {
	var shares []domain.Share
	for _, s := range d.SharedWith {
		shares = append(shares, domain.Share{
			UserID:     s.UserID,
			Permission: domain.Permission(s.Permission),
			SharedAt:   s.SharedAt,
		})
	}

	return domain.Task{
		ID:          d.ID,
		Seq:         d.Seq,
		Title:       d.Title,
		Description: d.Description,
		Status:      domain.Status(d.Status),
		Priority:    domain.Priority(d.Priority),
		DueDate:     d.DueDate,
		OwnerID:     d.OwnerID,
		SharedWith:  shares,
		Tags:        d.Tags,
		IsArchived:  d.IsArchived,
		CompletedAt: d.CompletedAt,
		Version:     d.Version,
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
	}
}

var sortFields = map[domain.SortField]string{
	domain.SortCreatedAt: "created_at",
	domain.SortUpdatedAt: "updated_at",
	domain.SortDueDate:   "due_date",
	domain.SortPriority:  "priority_rank",
	domain.SortTitle:     "title",
}

type tasksRepo struct {
	c        *mongo.Collection
	counters *mongo.Collection
}

// nextSeq atomically increments the task counter.
func (r *tasksRepo) nextSeq(ctx context.Context) (int64, error) {
	var out struct {
		Seq int64 `bson:"seq"`
	}
	err := r.counters.FindOneAndUpdate(ctx,
		bson.M{"_id": tasksCollection},
		bson.M{"$inc": bson.M{"seq": int64(1)}},
		options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After),
	).Decode(&out)
	return out.Seq, err
}

func (r *tasksRepo) CreateTask(ctx context.Context, t domain.Task) (domain.Task, error) {
	seq, err := r.nextSeq(ctx)
	if err != nil {
		return domain.Task{}, err
	}
	t.Seq = seq

	if _, err := r.c.InsertOne(ctx, toTaskDoc(t)); err != nil {
		return domain.Task{}, mapDuplicate(err)
	}
	return t, nil
}

func (r *tasksRepo) GetTask(ctx context.Context, id string) (domain.Task, error) {
	var doc taskDoc
	if err := r.c.FindOne(ctx, bson.M{"_id": id}).Decode(&doc); err != nil {
		return domain.Task{}, mapNotFound(err)
	}
	return doc.toDomain(), nil
}

func (r *tasksRepo) UpdateTask(ctx context.Context, t domain.Task, expectedVersion int64) error {
	res, err := r.c.ReplaceOne(ctx, bson.M{"_id": t.ID, "version": expectedVersion}, toTaskDoc(t))
	if err != nil {
		return err
	}
	if res.MatchedCount > 0 {
		return nil
	}

	n, err := r.c.CountDocuments(ctx, bson.M{"_id": t.ID})
	if err != nil {
		return err
	}
	if n == 0 {
		return store.ErrNotFound
	}
	return store.ErrVersionConflict
}

func (r *tasksRepo) DeleteTask(ctx context.Context, id string) error {
	res, err := r.c.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (r *tasksRepo) ListTasks(ctx context.Context, q store.TaskQuery) ([]domain.Task, int, error) {
	filter := buildFilter(q)

	total, err := r.c.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	field, ok := sortFields[q.SortBy]
	if !ok {
		field = sortFields[domain.SortCreatedAt]
	}
	dir := -1
	if q.Order == domain.SortAsc {
		dir = 1
	}

	opts := options.Find().
		SetSort(bson.D{{Key: field, Value: dir}, {Key: "seq", Value: dir}}).
		SetSkip(int64(q.Offset)).
		SetLimit(int64(q.Limit))

	cur, err := r.c.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, err
	}

	var docs []taskDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, 0, err
	}

	tasks := make([]domain.Task, len(docs))
	for i, d := range docs {
		tasks[i] = d.toDomain()
	}
	return tasks, int(total), nil
}

func (r *tasksRepo) Stats(ctx context.Context, viewerID string, now time.Time) (domain.Stats, error) {
	countIf := func(cond bson.M) bson.M {
		return bson.M{"$sum": bson.M{"$cond": bson.A{cond, 1, 0}}}
	}
	statusIs := func(s domain.Status) bson.M {
		return bson.M{"$eq": bson.A{"$status", string(s)}}
	}

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: visibleTo(viewerID)}},
		{{Key: "$group", Value: bson.M{
			"_id":         nil,
			"total":       bson.M{"$sum": 1},
			"pending":     countIf(statusIs(domain.StatusPending)),
			"in_progress": countIf(statusIs(domain.StatusInProgress)),
			"completed":   countIf(statusIs(domain.StatusCompleted)),
			"overdue": countIf(bson.M{"$and": bson.A{
				bson.M{"$eq": bson.A{bson.M{"$type": "$due_date"}, "date"}},
				bson.M{"$lt": bson.A{"$due_date", now}},
				bson.M{"$ne": bson.A{"$status", string(domain.StatusCompleted)}},
			}}),
		}}},
	}

	cur, err := r.c.Aggregate(ctx, pipeline)
	if err != nil {
		return domain.Stats{}, err
	}

	var rows []struct {
		Total      int `bson:"total"`
		Pending    int `bson:"pending"`
		InProgress int `bson:"in_progress"`
		Completed  int `bson:"completed"`
		Overdue    int `bson:"overdue"`
	}
	if err := cur.All(ctx, &rows); err != nil {
		return domain.Stats{}, err
	}
	if len(rows) == 0 {
		return domain.Stats{}, nil
	}

	row := rows[0]
	return domain.Stats{
		Total:      row.Total,
		Pending:    row.Pending,
		InProgress: row.InProgress,
		Completed:  row.Completed,
		Overdue:    row.Overdue,
	}, nil
}

func visibleTo(userID string) bson.M {
	return bson.M{
		"is_archived": false,
		"$or": bson.A{
			bson.M{"owner_id": userID},
			bson.M{"shared_with.user_id": userID},
		},
	}
}

func buildFilter(q store.TaskQuery) bson.M {
	and := bson.A{visibleTo(q.ViewerID)}

	if q.Status != "" {
		and = append(and, bson.M{"status": string(q.Status)})
	}
	if q.Priority != "" {
		and = append(and, bson.M{"priority": string(q.Priority)})
	}
	if q.OverdueAt != nil {
		and = append(and, bson.M{
			"due_date": bson.M{"$ne": nil, "$lt": *q.OverdueAt},
			"status":   bson.M{"$ne": string(domain.StatusCompleted)},
		})
	}

	return bson.M{"$and": and}
}
