// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/studium/ent/airequestlog"
	"github.com/abhisek/studium/ent/bookmark"
	"github.com/abhisek/studium/ent/chapter"
	"github.com/abhisek/studium/ent/course"
	"github.com/abhisek/studium/ent/courseenrollment"
	"github.com/abhisek/studium/ent/predicate"
	"github.com/abhisek/studium/ent/quizresult"
	"github.com/abhisek/studium/ent/schema"
	"github.com/abhisek/studium/ent/studysession"
	"github.com/abhisek/studium/ent/subject"
	"github.com/abhisek/studium/ent/userprogress"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeAIRequestLog     = "AIRequestLog"
	TypeBookmark         = "Bookmark"
	TypeChapter          = "Chapter"
	TypeCourse           = "Course"
	TypeCourseEnrollment = "CourseEnrollment"
	TypeQuizResult       = "QuizResult"
	TypeStudySession     = "StudySession"
	TypeSubject          = "Subject"
	TypeUserProgress     = "UserProgress"
)

// AIRequestLogMutation represents an operation that mutates the AIRequestLog nodes in the graph.
type AIRequestLogMutation struct {
	config
	op               Op
	typ              string
	id               *int
	provider         *string
	model            *string
	purpose          *string
	input_tokens     *int
	addinput_tokens  *int
	output_tokens    *int
	addoutput_tokens *int
	latency_ms       *int64
	addlatency_ms    *int64
	success          *bool
	error_message    *string
	created_at       *time.Time
	clearedFields    map[string]struct{}
	done             bool
	oldValue         func(context.Context) (*AIRequestLog, error)
	predicates       []predicate.AIRequestLog
}

var _ ent.Mutation = (*AIRequestLogMutation)(nil)

// airequestlogOption allows management of the mutation configuration using functional options.
type airequestlogOption func(*AIRequestLogMutation)

// newAIRequestLogMutation creates new mutation for the AIRequestLog entity.
func newAIRequestLogMutation(c config, op Op, opts ...airequestlogOption) *AIRequestLogMutation {
	m := &AIRequestLogMutation{
		config:        c,
		op:            op,
		typ:           TypeAIRequestLog,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAIRequestLogID sets the ID field of the mutation.
func withAIRequestLogID(id int) airequestlogOption {
	return func(m *AIRequestLogMutation) {
		var (
			err   error
			once  sync.Once
			value *AIRequestLog
		)
		m.oldValue = func(ctx context.Context) (*AIRequestLog, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().AIRequestLog.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAIRequestLog sets the old AIRequestLog of the mutation.
func withAIRequestLog(node *AIRequestLog) airequestlogOption {
	return func(m *AIRequestLogMutation) {
		m.oldValue = func(context.Context) (*AIRequestLog, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AIRequestLogMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AIRequestLogMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AIRequestLogMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AIRequestLogMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().AIRequestLog.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetProvider sets the "provider" field.
func (m *AIRequestLogMutation) SetProvider(s string) {
	m.provider = &s
}

// Provider returns the value of the "provider" field in the mutation.
func (m *AIRequestLogMutation) Provider() (r string, exists bool) {
	v := m.provider
	if v == nil {
		return
	}
	return *v, true
}

// OldProvider returns the old "provider" field's value of the AIRequestLog entity.
// If the AIRequestLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AIRequestLogMutation) OldProvider(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProvider is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProvider requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProvider: %w", err)
	}
	return oldValue.Provider, nil
}

// ResetProvider resets all changes to the "provider" field.
func (m *AIRequestLogMutation) ResetProvider() {
	m.provider = nil
}

// SetModel sets the "model" field.
func (m *AIRequestLogMutation) SetModel(s string) {
	m.model = &s
}

// Model returns the value of the "model" field in the mutation.
func (m *AIRequestLogMutation) Model() (r string, exists bool) {
	v := m.model
	if v == nil {
		return
	}
	return *v, true
}

// OldModel returns the old "model" field's value of the AIRequestLog entity.
// If the AIRequestLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AIRequestLogMutation) OldModel(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldModel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldModel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldModel: %w", err)
	}
	return oldValue.Model, nil
}

// ResetModel resets all changes to the "model" field.
func (m *AIRequestLogMutation) ResetModel() {
	m.model = nil
}

// SetPurpose sets the "purpose" field.
func (m *AIRequestLogMutation) SetPurpose(s string) {
	m.purpose = &s
}

// Purpose returns the value of the "purpose" field in the mutation.
func (m *AIRequestLogMutation) Purpose() (r string, exists bool) {
	v := m.purpose
	if v == nil {
		return
	}
	return *v, true
}

// OldPurpose returns the old "purpose" field's value of the AIRequestLog entity.
// If the AIRequestLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AIRequestLogMutation) OldPurpose(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPurpose is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPurpose requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPurpose: %w", err)
	}
	return oldValue.Purpose, nil
}

// ResetPurpose resets all changes to the "purpose" field.
func (m *AIRequestLogMutation) ResetPurpose() {
	m.purpose = nil
}

// SetInputTokens sets the "input_tokens" field.
func (m *AIRequestLogMutation) SetInputTokens(i int) {
	m.input_tokens = &i
	m.addinput_tokens = nil
}

// InputTokens returns the value of the "input_tokens" field in the mutation.
func (m *AIRequestLogMutation) InputTokens() (r int, exists bool) {
	v := m.input_tokens
	if v == nil {
		return
	}
	return *v, true
}

// OldInputTokens returns the old "input_tokens" field's value of the AIRequestLog entity.
// If the AIRequestLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AIRequestLogMutation) OldInputTokens(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInputTokens is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInputTokens requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInputTokens: %w", err)
	}
	return oldValue.InputTokens, nil
}

// AddInputTokens adds i to the "input_tokens" field.
func (m *AIRequestLogMutation) AddInputTokens(i int) {
	if m.addinput_tokens != nil {
		*m.addinput_tokens += i
	} else {
		m.addinput_tokens = &i
	}
}

// AddedInputTokens returns the value that was added to the "input_tokens" field in this mutation.
func (m *AIRequestLogMutation) AddedInputTokens() (r int, exists bool) {
	v := m.addinput_tokens
	if v == nil {
		return
	}
	return *v, true
}

// ResetInputTokens resets all changes to the "input_tokens" field.
func (m *AIRequestLogMutation) ResetInputTokens() {
	m.input_tokens = nil
	m.addinput_tokens = nil
}

// SetOutputTokens sets the "output_tokens" field.
func (m *AIRequestLogMutation) SetOutputTokens(i int) {
	m.output_tokens = &i
	m.addoutput_tokens = nil
}

// OutputTokens returns the value of the "output_tokens" field in the mutation.
func (m *AIRequestLogMutation) OutputTokens() (r int, exists bool) {
	v := m.output_tokens
	if v == nil {
		return
	}
	return *v, true
}

// OldOutputTokens returns the old "output_tokens" field's value of the AIRequestLog entity.
// If the AIRequestLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AIRequestLogMutation) OldOutputTokens(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOutputTokens is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOutputTokens requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOutputTokens: %w", err)
	}
	return oldValue.OutputTokens, nil
}

// AddOutputTokens adds i to the "output_tokens" field.
func (m *AIRequestLogMutation) AddOutputTokens(i int) {
	if m.addoutput_tokens != nil {
		*m.addoutput_tokens += i
	} else {
		m.addoutput_tokens = &i
	}
}

// AddedOutputTokens returns the value that was added to the "output_tokens" field in this mutation.
func (m *AIRequestLogMutation) AddedOutputTokens() (r int, exists bool) {
	v := m.addoutput_tokens
	if v == nil {
		return
	}
	return *v, true
}

// ResetOutputTokens resets all changes to the "output_tokens" field.
func (m *AIRequestLogMutation) ResetOutputTokens() {
	m.output_tokens = nil
	m.addoutput_tokens = nil
}

// SetLatencyMs sets the "latency_ms" field.
func (m *AIRequestLogMutation) SetLatencyMs(i int64) {
	m.latency_ms = &i
	m.addlatency_ms = nil
}

// LatencyMs returns the value of the "latency_ms" field in the mutation.
func (m *AIRequestLogMutation) LatencyMs() (r int64, exists bool) {
	v := m.latency_ms
	if v == nil {
		return
	}
	return *v, true
}

// OldLatencyMs returns the old "latency_ms" field's value of the AIRequestLog entity.
// If the AIRequestLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AIRequestLogMutation) OldLatencyMs(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLatencyMs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLatencyMs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLatencyMs: %w", err)
	}
	return oldValue.LatencyMs, nil
}

// AddLatencyMs adds i to the "latency_ms" field.
func (m *AIRequestLogMutation) AddLatencyMs(i int64) {
	if m.addlatency_ms != nil {
		*m.addlatency_ms += i
	} else {
		m.addlatency_ms = &i
	}
}

// AddedLatencyMs returns the value that was added to the "latency_ms" field in this mutation.
func (m *AIRequestLogMutation) AddedLatencyMs() (r int64, exists bool) {
	v := m.addlatency_ms
	if v == nil {
		return
	}
	return *v, true
}

// ResetLatencyMs resets all changes to the "latency_ms" field.
func (m *AIRequestLogMutation) ResetLatencyMs() {
	m.latency_ms = nil
	m.addlatency_ms = nil
}

// SetSuccess sets the "success" field.
func (m *AIRequestLogMutation) SetSuccess(b bool) {
	m.success = &b
}

// Success returns the value of the "success" field in the mutation.
func (m *AIRequestLogMutation) Success() (r bool, exists bool) {
	v := m.success
	if v == nil {
		return
	}
	return *v, true
}

// OldSuccess returns the old "success" field's value of the AIRequestLog entity.
// If the AIRequestLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AIRequestLogMutation) OldSuccess(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSuccess is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSuccess requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSuccess: %w", err)
	}
	return oldValue.Success, nil
}

// ResetSuccess resets all changes to the "success" field.
func (m *AIRequestLogMutation) ResetSuccess() {
	m.success = nil
}

// SetErrorMessage sets the "error_message" field.
func (m *AIRequestLogMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *AIRequestLogMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the AIRequestLog entity.
// If the AIRequestLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AIRequestLogMutation) OldErrorMessage(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *AIRequestLogMutation) ResetErrorMessage() {
	m.error_message = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *AIRequestLogMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *AIRequestLogMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the AIRequestLog entity.
// If the AIRequestLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AIRequestLogMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *AIRequestLogMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the AIRequestLogMutation builder.
func (m *AIRequestLogMutation) Where(ps ...predicate.AIRequestLog) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AIRequestLogMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AIRequestLogMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.AIRequestLog, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AIRequestLogMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AIRequestLogMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (AIRequestLog).
func (m *AIRequestLogMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AIRequestLogMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.provider != nil {
		fields = append(fields, airequestlog.FieldProvider)
	}
	if m.model != nil {
		fields = append(fields, airequestlog.FieldModel)
	}
	if m.purpose != nil {
		fields = append(fields, airequestlog.FieldPurpose)
	}
	if m.input_tokens != nil {
		fields = append(fields, airequestlog.FieldInputTokens)
	}
	if m.output_tokens != nil {
		fields = append(fields, airequestlog.FieldOutputTokens)
	}
	if m.latency_ms != nil {
		fields = append(fields, airequestlog.FieldLatencyMs)
	}
	if m.success != nil {
		fields = append(fields, airequestlog.FieldSuccess)
	}
	if m.error_message != nil {
		fields = append(fields, airequestlog.FieldErrorMessage)
	}
	if m.created_at != nil {
		fields = append(fields, airequestlog.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AIRequestLogMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case airequestlog.FieldProvider:
		return m.Provider()
	case airequestlog.FieldModel:
		return m.Model()
	case airequestlog.FieldPurpose:
		return m.Purpose()
	case airequestlog.FieldInputTokens:
		return m.InputTokens()
	case airequestlog.FieldOutputTokens:
		return m.OutputTokens()
	case airequestlog.FieldLatencyMs:
		return m.LatencyMs()
	case airequestlog.FieldSuccess:
		return m.Success()
	case airequestlog.FieldErrorMessage:
		return m.ErrorMessage()
	case airequestlog.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AIRequestLogMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case airequestlog.FieldProvider:
		return m.OldProvider(ctx)
	case airequestlog.FieldModel:
		return m.OldModel(ctx)
	case airequestlog.FieldPurpose:
		return m.OldPurpose(ctx)
	case airequestlog.FieldInputTokens:
		return m.OldInputTokens(ctx)
	case airequestlog.FieldOutputTokens:
		return m.OldOutputTokens(ctx)
	case airequestlog.FieldLatencyMs:
		return m.OldLatencyMs(ctx)
	case airequestlog.FieldSuccess:
		return m.OldSuccess(ctx)
	case airequestlog.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	case airequestlog.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown AIRequestLog field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AIRequestLogMutation) SetField(name string, value ent.Value) error {
	switch name {
	case airequestlog.FieldProvider:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProvider(v)
		return nil
	case airequestlog.FieldModel:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetModel(v)
		return nil
	case airequestlog.FieldPurpose:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPurpose(v)
		return nil
	case airequestlog.FieldInputTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInputTokens(v)
		return nil
	case airequestlog.FieldOutputTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOutputTokens(v)
		return nil
	case airequestlog.FieldLatencyMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLatencyMs(v)
		return nil
	case airequestlog.FieldSuccess:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSuccess(v)
		return nil
	case airequestlog.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	case airequestlog.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown AIRequestLog field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AIRequestLogMutation) AddedFields() []string {
	var fields []string
	if m.addinput_tokens != nil {
		fields = append(fields, airequestlog.FieldInputTokens)
	}
	if m.addoutput_tokens != nil {
		fields = append(fields, airequestlog.FieldOutputTokens)
	}
	if m.addlatency_ms != nil {
		fields = append(fields, airequestlog.FieldLatencyMs)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AIRequestLogMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case airequestlog.FieldInputTokens:
		return m.AddedInputTokens()
	case airequestlog.FieldOutputTokens:
		return m.AddedOutputTokens()
	case airequestlog.FieldLatencyMs:
		return m.AddedLatencyMs()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AIRequestLogMutation) AddField(name string, value ent.Value) error {
	switch name {
	case airequestlog.FieldInputTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddInputTokens(v)
		return nil
	case airequestlog.FieldOutputTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddOutputTokens(v)
		return nil
	case airequestlog.FieldLatencyMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddLatencyMs(v)
		return nil
	}
	return fmt.Errorf("unknown AIRequestLog numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AIRequestLogMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AIRequestLogMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AIRequestLogMutation) ClearField(name string) error {
	return fmt.Errorf("unknown AIRequestLog nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AIRequestLogMutation) ResetField(name string) error {
	switch name {
	case airequestlog.FieldProvider:
		m.ResetProvider()
		return nil
	case airequestlog.FieldModel:
		m.ResetModel()
		return nil
	case airequestlog.FieldPurpose:
		m.ResetPurpose()
		return nil
	case airequestlog.FieldInputTokens:
		m.ResetInputTokens()
		return nil
	case airequestlog.FieldOutputTokens:
		m.ResetOutputTokens()
		return nil
	case airequestlog.FieldLatencyMs:
		m.ResetLatencyMs()
		return nil
	case airequestlog.FieldSuccess:
		m.ResetSuccess()
		return nil
	case airequestlog.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	case airequestlog.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown AIRequestLog field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AIRequestLogMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AIRequestLogMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AIRequestLogMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AIRequestLogMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AIRequestLogMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AIRequestLogMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AIRequestLogMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown AIRequestLog unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AIRequestLogMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown AIRequestLog edge %s", name)
}

// BookmarkMutation represents an operation that mutates the Bookmark nodes in the graph.
type BookmarkMutation struct {
	config
	op                         Op
	typ                        string
	id                         *int
	user_id                    *string
	content_block_index        *int
	addcontent_block_index     *int
	content_block_type         *string
	title                      *string
	note                       *string
	tags                       *[]string
	appendtags                 []string
	difficulty_when_bookmarked *string
	reason_for_bookmark        *string
	created_at                 *time.Time
	last_reviewed              *time.Time
	clearedFields              map[string]struct{}
	chapter                    *int
	clearedchapter             bool
	done                       bool
	oldValue                   func(context.Context) (*Bookmark, error)
	predicates                 []predicate.Bookmark
}

var _ ent.Mutation = (*BookmarkMutation)(nil)

// bookmarkOption allows management of the mutation configuration using functional options.
type bookmarkOption func(*BookmarkMutation)

// newBookmarkMutation creates new mutation for the Bookmark entity.
func newBookmarkMutation(c config, op Op, opts ...bookmarkOption) *BookmarkMutation {
	m := &BookmarkMutation{
		config:        c,
		op:            op,
		typ:           TypeBookmark,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withBookmarkID sets the ID field of the mutation.
func withBookmarkID(id int) bookmarkOption {
	return func(m *BookmarkMutation) {
		var (
			err   error
			once  sync.Once
			value *Bookmark
		)
		m.oldValue = func(ctx context.Context) (*Bookmark, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Bookmark.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withBookmark sets the old Bookmark of the mutation.
func withBookmark(node *Bookmark) bookmarkOption {
	return func(m *BookmarkMutation) {
		m.oldValue = func(context.Context) (*Bookmark, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m BookmarkMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m BookmarkMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *BookmarkMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *BookmarkMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Bookmark.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetUserID sets the "user_id" field.
func (m *BookmarkMutation) SetUserID(s string) {
	m.user_id = &s
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *BookmarkMutation) UserID() (r string, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the Bookmark entity.
// If the Bookmark object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BookmarkMutation) OldUserID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *BookmarkMutation) ResetUserID() {
	m.user_id = nil
}

// SetContentBlockIndex sets the "content_block_index" field.
func (m *BookmarkMutation) SetContentBlockIndex(i int) {
	m.content_block_index = &i
	m.addcontent_block_index = nil
}

// ContentBlockIndex returns the value of the "content_block_index" field in the mutation.
func (m *BookmarkMutation) ContentBlockIndex() (r int, exists bool) {
	v := m.content_block_index
	if v == nil {
		return
	}
	return *v, true
}

// OldContentBlockIndex returns the old "content_block_index" field's value of the Bookmark entity.
// If the Bookmark object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BookmarkMutation) OldContentBlockIndex(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContentBlockIndex is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContentBlockIndex requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContentBlockIndex: %w", err)
	}
	return oldValue.ContentBlockIndex, nil
}

// AddContentBlockIndex adds i to the "content_block_index" field.
func (m *BookmarkMutation) AddContentBlockIndex(i int) {
	if m.addcontent_block_index != nil {
		*m.addcontent_block_index += i
	} else {
		m.addcontent_block_index = &i
	}
}

// AddedContentBlockIndex returns the value that was added to the "content_block_index" field in this mutation.
func (m *BookmarkMutation) AddedContentBlockIndex() (r int, exists bool) {
	v := m.addcontent_block_index
	if v == nil {
		return
	}
	return *v, true
}

// ResetContentBlockIndex resets all changes to the "content_block_index" field.
func (m *BookmarkMutation) ResetContentBlockIndex() {
	m.content_block_index = nil
	m.addcontent_block_index = nil
}

// SetContentBlockType sets the "content_block_type" field.
func (m *BookmarkMutation) SetContentBlockType(s string) {
	m.content_block_type = &s
}

// ContentBlockType returns the value of the "content_block_type" field in the mutation.
func (m *BookmarkMutation) ContentBlockType() (r string, exists bool) {
	v := m.content_block_type
	if v == nil {
		return
	}
	return *v, true
}

// OldContentBlockType returns the old "content_block_type" field's value of the Bookmark entity.
// If the Bookmark object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BookmarkMutation) OldContentBlockType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContentBlockType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContentBlockType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContentBlockType: %w", err)
	}
	return oldValue.ContentBlockType, nil
}

// ClearContentBlockType clears the value of the "content_block_type" field.
func (m *BookmarkMutation) ClearContentBlockType() {
	m.content_block_type = nil
	m.clearedFields[bookmark.FieldContentBlockType] = struct{}{}
}

// ContentBlockTypeCleared returns if the "content_block_type" field was cleared in this mutation.
func (m *BookmarkMutation) ContentBlockTypeCleared() bool {
	_, ok := m.clearedFields[bookmark.FieldContentBlockType]
	return ok
}

// ResetContentBlockType resets all changes to the "content_block_type" field.
func (m *BookmarkMutation) ResetContentBlockType() {
	m.content_block_type = nil
	delete(m.clearedFields, bookmark.FieldContentBlockType)
}

// SetTitle sets the "title" field.
func (m *BookmarkMutation) SetTitle(s string) {
	m.title = &s
}

// Title returns the value of the "title" field in the mutation.
func (m *BookmarkMutation) Title() (r string, exists bool) {
	v := m.title
	if v == nil {
		return
	}
	return *v, true
}

// OldTitle returns the old "title" field's value of the Bookmark entity.
// If the Bookmark object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BookmarkMutation) OldTitle(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTitle is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTitle requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTitle: %w", err)
	}
	return oldValue.Title, nil
}

// ResetTitle resets all changes to the "title" field.
func (m *BookmarkMutation) ResetTitle() {
	m.title = nil
}

// SetNote sets the "note" field.
func (m *BookmarkMutation) SetNote(s string) {
	m.note = &s
}

// Note returns the value of the "note" field in the mutation.
func (m *BookmarkMutation) Note() (r string, exists bool) {
	v := m.note
	if v == nil {
		return
	}
	return *v, true
}

// OldNote returns the old "note" field's value of the Bookmark entity.
// If the Bookmark object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BookmarkMutation) OldNote(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNote is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNote requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNote: %w", err)
	}
	return oldValue.Note, nil
}

// ClearNote clears the value of the "note" field.
func (m *BookmarkMutation) ClearNote() {
	m.note = nil
	m.clearedFields[bookmark.FieldNote] = struct{}{}
}

// NoteCleared returns if the "note" field was cleared in this mutation.
func (m *BookmarkMutation) NoteCleared() bool {
	_, ok := m.clearedFields[bookmark.FieldNote]
	return ok
}

// ResetNote resets all changes to the "note" field.
func (m *BookmarkMutation) ResetNote() {
	m.note = nil
	delete(m.clearedFields, bookmark.FieldNote)
}

// SetTags sets the "tags" field.
func (m *BookmarkMutation) SetTags(s []string) {
	m.tags = &s
	m.appendtags = nil
}

// Tags returns the value of the "tags" field in the mutation.
func (m *BookmarkMutation) Tags() (r []string, exists bool) {
	v := m.tags
	if v == nil {
		return
	}
	return *v, true
}

// OldTags returns the old "tags" field's value of the Bookmark entity.
// If the Bookmark object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BookmarkMutation) OldTags(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTags is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTags requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTags: %w", err)
	}
	return oldValue.Tags, nil
}

// AppendTags adds s to the "tags" field.
func (m *BookmarkMutation) AppendTags(s []string) {
	m.appendtags = append(m.appendtags, s...)
}

// AppendedTags returns the list of values that were appended to the "tags" field in this mutation.
func (m *BookmarkMutation) AppendedTags() ([]string, bool) {
	if len(m.appendtags) == 0 {
		return nil, false
	}
	return m.appendtags, true
}

// ClearTags clears the value of the "tags" field.
func (m *BookmarkMutation) ClearTags() {
	m.tags = nil
	m.appendtags = nil
	m.clearedFields[bookmark.FieldTags] = struct{}{}
}

// TagsCleared returns if the "tags" field was cleared in this mutation.
func (m *BookmarkMutation) TagsCleared() bool {
	_, ok := m.clearedFields[bookmark.FieldTags]
	return ok
}

// ResetTags resets all changes to the "tags" field.
func (m *BookmarkMutation) ResetTags() {
	m.tags = nil
	m.appendtags = nil
	delete(m.clearedFields, bookmark.FieldTags)
}

// SetDifficultyWhenBookmarked sets the "difficulty_when_bookmarked" field.
func (m *BookmarkMutation) SetDifficultyWhenBookmarked(s string) {
	m.difficulty_when_bookmarked = &s
}

// DifficultyWhenBookmarked returns the value of the "difficulty_when_bookmarked" field in the mutation.
func (m *BookmarkMutation) DifficultyWhenBookmarked() (r string, exists bool) {
	v := m.difficulty_when_bookmarked
	if v == nil {
		return
	}
	return *v, true
}

// OldDifficultyWhenBookmarked returns the old "difficulty_when_bookmarked" field's value of the Bookmark entity.
// If the Bookmark object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BookmarkMutation) OldDifficultyWhenBookmarked(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDifficultyWhenBookmarked is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDifficultyWhenBookmarked requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDifficultyWhenBookmarked: %w", err)
	}
	return oldValue.DifficultyWhenBookmarked, nil
}

// ClearDifficultyWhenBookmarked clears the value of the "difficulty_when_bookmarked" field.
func (m *BookmarkMutation) ClearDifficultyWhenBookmarked() {
	m.difficulty_when_bookmarked = nil
	m.clearedFields[bookmark.FieldDifficultyWhenBookmarked] = struct{}{}
}

// DifficultyWhenBookmarkedCleared returns if the "difficulty_when_bookmarked" field was cleared in this mutation.
func (m *BookmarkMutation) DifficultyWhenBookmarkedCleared() bool {
	_, ok := m.clearedFields[bookmark.FieldDifficultyWhenBookmarked]
	return ok
}

// ResetDifficultyWhenBookmarked resets all changes to the "difficulty_when_bookmarked" field.
func (m *BookmarkMutation) ResetDifficultyWhenBookmarked() {
	m.difficulty_when_bookmarked = nil
	delete(m.clearedFields, bookmark.FieldDifficultyWhenBookmarked)
}

// SetReasonForBookmark sets the "reason_for_bookmark" field.
func (m *BookmarkMutation) SetReasonForBookmark(s string) {
	m.reason_for_bookmark = &s
}

// ReasonForBookmark returns the value of the "reason_for_bookmark" field in the mutation.
func (m *BookmarkMutation) ReasonForBookmark() (r string, exists bool) {
	v := m.reason_for_bookmark
	if v == nil {
		return
	}
	return *v, true
}

// OldReasonForBookmark returns the old "reason_for_bookmark" field's value of the Bookmark entity.
// If the Bookmark object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BookmarkMutation) OldReasonForBookmark(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReasonForBookmark is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReasonForBookmark requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReasonForBookmark: %w", err)
	}
	return oldValue.ReasonForBookmark, nil
}

// ResetReasonForBookmark resets all changes to the "reason_for_bookmark" field.
func (m *BookmarkMutation) ResetReasonForBookmark() {
	m.reason_for_bookmark = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *BookmarkMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *BookmarkMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Bookmark entity.
// If the Bookmark object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BookmarkMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *BookmarkMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetLastReviewed sets the "last_reviewed" field.
func (m *BookmarkMutation) SetLastReviewed(t time.Time) {
	m.last_reviewed = &t
}

// LastReviewed returns the value of the "last_reviewed" field in the mutation.
func (m *BookmarkMutation) LastReviewed() (r time.Time, exists bool) {
	v := m.last_reviewed
	if v == nil {
		return
	}
	return *v, true
}

// OldLastReviewed returns the old "last_reviewed" field's value of the Bookmark entity.
// If the Bookmark object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BookmarkMutation) OldLastReviewed(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastReviewed is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastReviewed requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastReviewed: %w", err)
	}
	return oldValue.LastReviewed, nil
}

// ClearLastReviewed clears the value of the "last_reviewed" field.
func (m *BookmarkMutation) ClearLastReviewed() {
	m.last_reviewed = nil
	m.clearedFields[bookmark.FieldLastReviewed] = struct{}{}
}

// LastReviewedCleared returns if the "last_reviewed" field was cleared in this mutation.
func (m *BookmarkMutation) LastReviewedCleared() bool {
	_, ok := m.clearedFields[bookmark.FieldLastReviewed]
	return ok
}

// ResetLastReviewed resets all changes to the "last_reviewed" field.
func (m *BookmarkMutation) ResetLastReviewed() {
	m.last_reviewed = nil
	delete(m.clearedFields, bookmark.FieldLastReviewed)
}

// SetChapterID sets the "chapter_id" field.
func (m *BookmarkMutation) SetChapterID(i int) {
	m.chapter = &i
}

// ChapterID returns the value of the "chapter_id" field in the mutation.
func (m *BookmarkMutation) ChapterID() (r int, exists bool) {
	v := m.chapter
	if v == nil {
		return
	}
	return *v, true
}

// OldChapterID returns the old "chapter_id" field's value of the Bookmark entity.
// If the Bookmark object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BookmarkMutation) OldChapterID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldChapterID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldChapterID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldChapterID: %w", err)
	}
	return oldValue.ChapterID, nil
}

// ResetChapterID resets all changes to the "chapter_id" field.
func (m *BookmarkMutation) ResetChapterID() {
	m.chapter = nil
}

// ClearChapter clears the "chapter" edge to the Chapter entity.
func (m *BookmarkMutation) ClearChapter() {
	m.clearedchapter = true
	m.clearedFields[bookmark.FieldChapterID] = struct{}{}
}

// ChapterCleared reports if the "chapter" edge to the Chapter entity was cleared.
func (m *BookmarkMutation) ChapterCleared() bool {
	return m.clearedchapter
}

// ChapterIDs returns the "chapter" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ChapterID instead. It exists only for internal usage by the builders.
func (m *BookmarkMutation) ChapterIDs() (ids []int) {
	if id := m.chapter; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetChapter resets all changes to the "chapter" edge.
func (m *BookmarkMutation) ResetChapter() {
	m.chapter = nil
	m.clearedchapter = false
}

// Where appends a list predicates to the BookmarkMutation builder.
func (m *BookmarkMutation) Where(ps ...predicate.Bookmark) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the BookmarkMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *BookmarkMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Bookmark, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *BookmarkMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *BookmarkMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Bookmark).
func (m *BookmarkMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *BookmarkMutation) Fields() []string {
	fields := make([]string, 0, 11)
	if m.user_id != nil {
		fields = append(fields, bookmark.FieldUserID)
	}
	if m.content_block_index != nil {
		fields = append(fields, bookmark.FieldContentBlockIndex)
	}
	if m.content_block_type != nil {
		fields = append(fields, bookmark.FieldContentBlockType)
	}
	if m.title != nil {
		fields = append(fields, bookmark.FieldTitle)
	}
	if m.note != nil {
		fields = append(fields, bookmark.FieldNote)
	}
	if m.tags != nil {
		fields = append(fields, bookmark.FieldTags)
	}
	if m.difficulty_when_bookmarked != nil {
		fields = append(fields, bookmark.FieldDifficultyWhenBookmarked)
	}
	if m.reason_for_bookmark != nil {
		fields = append(fields, bookmark.FieldReasonForBookmark)
	}
	if m.created_at != nil {
		fields = append(fields, bookmark.FieldCreatedAt)
	}
	if m.last_reviewed != nil {
		fields = append(fields, bookmark.FieldLastReviewed)
	}
	if m.chapter != nil {
		fields = append(fields, bookmark.FieldChapterID)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *BookmarkMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case bookmark.FieldUserID:
		return m.UserID()
	case bookmark.FieldContentBlockIndex:
		return m.ContentBlockIndex()
	case bookmark.FieldContentBlockType:
		return m.ContentBlockType()
	case bookmark.FieldTitle:
		return m.Title()
	case bookmark.FieldNote:
		return m.Note()
	case bookmark.FieldTags:
		return m.Tags()
	case bookmark.FieldDifficultyWhenBookmarked:
		return m.DifficultyWhenBookmarked()
	case bookmark.FieldReasonForBookmark:
		return m.ReasonForBookmark()
	case bookmark.FieldCreatedAt:
		return m.CreatedAt()
	case bookmark.FieldLastReviewed:
		return m.LastReviewed()
	case bookmark.FieldChapterID:
		return m.ChapterID()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *BookmarkMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case bookmark.FieldUserID:
		return m.OldUserID(ctx)
	case bookmark.FieldContentBlockIndex:
		return m.OldContentBlockIndex(ctx)
	case bookmark.FieldContentBlockType:
		return m.OldContentBlockType(ctx)
	case bookmark.FieldTitle:
		return m.OldTitle(ctx)
	case bookmark.FieldNote:
		return m.OldNote(ctx)
	case bookmark.FieldTags:
		return m.OldTags(ctx)
	case bookmark.FieldDifficultyWhenBookmarked:
		return m.OldDifficultyWhenBookmarked(ctx)
	case bookmark.FieldReasonForBookmark:
		return m.OldReasonForBookmark(ctx)
	case bookmark.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case bookmark.FieldLastReviewed:
		return m.OldLastReviewed(ctx)
	case bookmark.FieldChapterID:
		return m.OldChapterID(ctx)
	}
	return nil, fmt.Errorf("unknown Bookmark field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *BookmarkMutation) SetField(name string, value ent.Value) error {
	switch name {
	case bookmark.FieldUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case bookmark.FieldContentBlockIndex:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContentBlockIndex(v)
		return nil
	case bookmark.FieldContentBlockType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContentBlockType(v)
		return nil
	case bookmark.FieldTitle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTitle(v)
		return nil
	case bookmark.FieldNote:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNote(v)
		return nil
	case bookmark.FieldTags:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTags(v)
		return nil
	case bookmark.FieldDifficultyWhenBookmarked:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDifficultyWhenBookmarked(v)
		return nil
	case bookmark.FieldReasonForBookmark:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReasonForBookmark(v)
		return nil
	case bookmark.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case bookmark.FieldLastReviewed:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastReviewed(v)
		return nil
	case bookmark.FieldChapterID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetChapterID(v)
		return nil
	}
	return fmt.Errorf("unknown Bookmark field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *BookmarkMutation) AddedFields() []string {
	var fields []string
	if m.addcontent_block_index != nil {
		fields = append(fields, bookmark.FieldContentBlockIndex)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *BookmarkMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case bookmark.FieldContentBlockIndex:
		return m.AddedContentBlockIndex()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *BookmarkMutation) AddField(name string, value ent.Value) error {
	switch name {
	case bookmark.FieldContentBlockIndex:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddContentBlockIndex(v)
		return nil
	}
	return fmt.Errorf("unknown Bookmark numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *BookmarkMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(bookmark.FieldContentBlockType) {
		fields = append(fields, bookmark.FieldContentBlockType)
	}
	if m.FieldCleared(bookmark.FieldNote) {
		fields = append(fields, bookmark.FieldNote)
	}
	if m.FieldCleared(bookmark.FieldTags) {
		fields = append(fields, bookmark.FieldTags)
	}
	if m.FieldCleared(bookmark.FieldDifficultyWhenBookmarked) {
		fields = append(fields, bookmark.FieldDifficultyWhenBookmarked)
	}
	if m.FieldCleared(bookmark.FieldLastReviewed) {
		fields = append(fields, bookmark.FieldLastReviewed)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *BookmarkMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *BookmarkMutation) ClearField(name string) error {
	switch name {
	case bookmark.FieldContentBlockType:
		m.ClearContentBlockType()
		return nil
	case bookmark.FieldNote:
		m.ClearNote()
		return nil
	case bookmark.FieldTags:
		m.ClearTags()
		return nil
	case bookmark.FieldDifficultyWhenBookmarked:
		m.ClearDifficultyWhenBookmarked()
		return nil
	case bookmark.FieldLastReviewed:
		m.ClearLastReviewed()
		return nil
	}
	return fmt.Errorf("unknown Bookmark nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *BookmarkMutation) ResetField(name string) error {
	switch name {
	case bookmark.FieldUserID:
		m.ResetUserID()
		return nil
	case bookmark.FieldContentBlockIndex:
		m.ResetContentBlockIndex()
		return nil
	case bookmark.FieldContentBlockType:
		m.ResetContentBlockType()
		return nil
	case bookmark.FieldTitle:
		m.ResetTitle()
		return nil
	case bookmark.FieldNote:
		m.ResetNote()
		return nil
	case bookmark.FieldTags:
		m.ResetTags()
		return nil
	case bookmark.FieldDifficultyWhenBookmarked:
		m.ResetDifficultyWhenBookmarked()
		return nil
	case bookmark.FieldReasonForBookmark:
		m.ResetReasonForBookmark()
		return nil
	case bookmark.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case bookmark.FieldLastReviewed:
		m.ResetLastReviewed()
		return nil
	case bookmark.FieldChapterID:
		m.ResetChapterID()
		return nil
	}
	return fmt.Errorf("unknown Bookmark field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *BookmarkMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.chapter != nil {
		edges = append(edges, bookmark.EdgeChapter)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *BookmarkMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case bookmark.EdgeChapter:
		if id := m.chapter; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *BookmarkMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *BookmarkMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *BookmarkMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedchapter {
		edges = append(edges, bookmark.EdgeChapter)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *BookmarkMutation) EdgeCleared(name string) bool {
	switch name {
	case bookmark.EdgeChapter:
		return m.clearedchapter
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *BookmarkMutation) ClearEdge(name string) error {
	switch name {
	case bookmark.EdgeChapter:
		m.ClearChapter()
		return nil
	}
	return fmt.Errorf("unknown Bookmark unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *BookmarkMutation) ResetEdge(name string) error {
	switch name {
	case bookmark.EdgeChapter:
		m.ResetChapter()
		return nil
	}
	return fmt.Errorf("unknown Bookmark edge %s", name)
}

// ChapterMutation represents an operation that mutates the Chapter nodes in the graph.
type ChapterMutation struct {
	config
	op                      Op
	typ                     string
	id                      *int
	created_at              *time.Time
	updated_at              *time.Time
	title                   *string
	chapter_number          *int
	addchapter_number       *int
	intro_summary           *map[string]interface{}
	content_blocks          *[]map[string]interface{}
	appendcontent_blocks    []map[string]interface{}
	chapter_metadata        *map[string]interface{}
	difficulty_level        *string
	estimated_study_time    *int
	addestimated_study_time *int
	total_content_blocks    *int
	addtotal_content_blocks *int
	concept_count           *int
	addconcept_count        *int
	visualization_count     *int
	addvisualization_count  *int
	exercise_count          *int
	addexercise_count       *int
	case_study_count        *int
	addcase_study_count     *int
	clearedFields           map[string]struct{}
	subject                 *int
	clearedsubject          bool
	progress                map[int]struct{}
	removedprogress         map[int]struct{}
	clearedprogress         bool
	bookmarks               map[int]struct{}
	removedbookmarks        map[int]struct{}
	clearedbookmarks        bool
	quiz_results            map[int]struct{}
	removedquiz_results     map[int]struct{}
	clearedquiz_results     bool
	study_sessions          map[int]struct{}
	removedstudy_sessions   map[int]struct{}
	clearedstudy_sessions   bool
	done                    bool
	oldValue                func(context.Context) (*Chapter, error)
	predicates              []predicate.Chapter
}

var _ ent.Mutation = (*ChapterMutation)(nil)

// chapterOption allows management of the mutation configuration using functional options.
type chapterOption func(*ChapterMutation)

// newChapterMutation creates new mutation for the Chapter entity.
func newChapterMutation(c config, op Op, opts ...chapterOption) *ChapterMutation {
	m := &ChapterMutation{
		config:        c,
		op:            op,
		typ:           TypeChapter,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withChapterID sets the ID field of the mutation.
func withChapterID(id int) chapterOption {
	return func(m *ChapterMutation) {
		var (
			err   error
			once  sync.Once
			value *Chapter
		)
		m.oldValue = func(ctx context.Context) (*Chapter, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Chapter.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withChapter sets the old Chapter of the mutation.
func withChapter(node *Chapter) chapterOption {
	return func(m *ChapterMutation) {
		m.oldValue = func(context.Context) (*Chapter, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ChapterMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ChapterMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ChapterMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ChapterMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Chapter.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *ChapterMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ChapterMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Chapter entity.
// If the Chapter object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChapterMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ChapterMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *ChapterMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *ChapterMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Chapter entity.
// If the Chapter object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChapterMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *ChapterMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetTitle sets the "title" field.
func (m *ChapterMutation) SetTitle(s string) {
	m.title = &s
}

// Title returns the value of the "title" field in the mutation.
func (m *ChapterMutation) Title() (r string, exists bool) {
	v := m.title
	if v == nil {
		return
	}
	return *v, true
}

// OldTitle returns the old "title" field's value of the Chapter entity.
// If the Chapter object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChapterMutation) OldTitle(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTitle is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTitle requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTitle: %w", err)
	}
	return oldValue.Title, nil
}

// ResetTitle resets all changes to the "title" field.
func (m *ChapterMutation) ResetTitle() {
	m.title = nil
}

// SetChapterNumber sets the "chapter_number" field.
func (m *ChapterMutation) SetChapterNumber(i int) {
	m.chapter_number = &i
	m.addchapter_number = nil
}

// ChapterNumber returns the value of the "chapter_number" field in the mutation.
func (m *ChapterMutation) ChapterNumber() (r int, exists bool) {
	v := m.chapter_number
	if v == nil {
		return
	}
	return *v, true
}

// OldChapterNumber returns the old "chapter_number" field's value of the Chapter entity.
// If the Chapter object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChapterMutation) OldChapterNumber(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldChapterNumber is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldChapterNumber requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldChapterNumber: %w", err)
	}
	return oldValue.ChapterNumber, nil
}

// AddChapterNumber adds i to the "chapter_number" field.
func (m *ChapterMutation) AddChapterNumber(i int) {
	if m.addchapter_number != nil {
		*m.addchapter_number += i
	} else {
		m.addchapter_number = &i
	}
}

// AddedChapterNumber returns the value that was added to the "chapter_number" field in this mutation.
func (m *ChapterMutation) AddedChapterNumber() (r int, exists bool) {
	v := m.addchapter_number
	if v == nil {
		return
	}
	return *v, true
}

// ResetChapterNumber resets all changes to the "chapter_number" field.
func (m *ChapterMutation) ResetChapterNumber() {
	m.chapter_number = nil
	m.addchapter_number = nil
}

// SetIntroSummary sets the "intro_summary" field.
func (m *ChapterMutation) SetIntroSummary(value map[string]interface{}) {
	m.intro_summary = &value
}

// IntroSummary returns the value of the "intro_summary" field in the mutation.
func (m *ChapterMutation) IntroSummary() (r map[string]interface{}, exists bool) {
	v := m.intro_summary
	if v == nil {
		return
	}
	return *v, true
}

// OldIntroSummary returns the old "intro_summary" field's value of the Chapter entity.
// If the Chapter object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChapterMutation) OldIntroSummary(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIntroSummary is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIntroSummary requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIntroSummary: %w", err)
	}
	return oldValue.IntroSummary, nil
}

// ClearIntroSummary clears the value of the "intro_summary" field.
func (m *ChapterMutation) ClearIntroSummary() {
	m.intro_summary = nil
	m.clearedFields[chapter.FieldIntroSummary] = struct{}{}
}

// IntroSummaryCleared returns if the "intro_summary" field was cleared in this mutation.
func (m *ChapterMutation) IntroSummaryCleared() bool {
	_, ok := m.clearedFields[chapter.FieldIntroSummary]
	return ok
}

// ResetIntroSummary resets all changes to the "intro_summary" field.
func (m *ChapterMutation) ResetIntroSummary() {
	m.intro_summary = nil
	delete(m.clearedFields, chapter.FieldIntroSummary)
}

// SetContentBlocks sets the "content_blocks" field.
func (m *ChapterMutation) SetContentBlocks(value []map[string]interface{}) {
	m.content_blocks = &value
	m.appendcontent_blocks = nil
}

// ContentBlocks returns the value of the "content_blocks" field in the mutation.
func (m *ChapterMutation) ContentBlocks() (r []map[string]interface{}, exists bool) {
	v := m.content_blocks
	if v == nil {
		return
	}
	return *v, true
}

// OldContentBlocks returns the old "content_blocks" field's value of the Chapter entity.
// If the Chapter object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChapterMutation) OldContentBlocks(ctx context.Context) (v []map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContentBlocks is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContentBlocks requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContentBlocks: %w", err)
	}
	return oldValue.ContentBlocks, nil
}

// AppendContentBlocks adds value to the "content_blocks" field.
func (m *ChapterMutation) AppendContentBlocks(value []map[string]interface{}) {
	m.appendcontent_blocks = append(m.appendcontent_blocks, value...)
}

// AppendedContentBlocks returns the list of values that were appended to the "content_blocks" field in this mutation.
func (m *ChapterMutation) AppendedContentBlocks() ([]map[string]interface{}, bool) {
	if len(m.appendcontent_blocks) == 0 {
		return nil, false
	}
	return m.appendcontent_blocks, true
}

// ClearContentBlocks clears the value of the "content_blocks" field.
func (m *ChapterMutation) ClearContentBlocks() {
	m.content_blocks = nil
	m.appendcontent_blocks = nil
	m.clearedFields[chapter.FieldContentBlocks] = struct{}{}
}

// ContentBlocksCleared returns if the "content_blocks" field was cleared in this mutation.
func (m *ChapterMutation) ContentBlocksCleared() bool {
	_, ok := m.clearedFields[chapter.FieldContentBlocks]
	return ok
}

// ResetContentBlocks resets all changes to the "content_blocks" field.
func (m *ChapterMutation) ResetContentBlocks() {
	m.content_blocks = nil
	m.appendcontent_blocks = nil
	delete(m.clearedFields, chapter.FieldContentBlocks)
}

// SetChapterMetadata sets the "chapter_metadata" field.
func (m *ChapterMutation) SetChapterMetadata(value map[string]interface{}) {
	m.chapter_metadata = &value
}

// ChapterMetadata returns the value of the "chapter_metadata" field in the mutation.
func (m *ChapterMutation) ChapterMetadata() (r map[string]interface{}, exists bool) {
	v := m.chapter_metadata
	if v == nil {
		return
	}
	return *v, true
}

// OldChapterMetadata returns the old "chapter_metadata" field's value of the Chapter entity.
// If the Chapter object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChapterMutation) OldChapterMetadata(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldChapterMetadata is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldChapterMetadata requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldChapterMetadata: %w", err)
	}
	return oldValue.ChapterMetadata, nil
}

// ClearChapterMetadata clears the value of the "chapter_metadata" field.
func (m *ChapterMutation) ClearChapterMetadata() {
	m.chapter_metadata = nil
	m.clearedFields[chapter.FieldChapterMetadata] = struct{}{}
}

// ChapterMetadataCleared returns if the "chapter_metadata" field was cleared in this mutation.
func (m *ChapterMutation) ChapterMetadataCleared() bool {
	_, ok := m.clearedFields[chapter.FieldChapterMetadata]
	return ok
}

// ResetChapterMetadata resets all changes to the "chapter_metadata" field.
func (m *ChapterMutation) ResetChapterMetadata() {
	m.chapter_metadata = nil
	delete(m.clearedFields, chapter.FieldChapterMetadata)
}

// SetDifficultyLevel sets the "difficulty_level" field.
func (m *ChapterMutation) SetDifficultyLevel(s string) {
	m.difficulty_level = &s
}

// DifficultyLevel returns the value of the "difficulty_level" field in the mutation.
func (m *ChapterMutation) DifficultyLevel() (r string, exists bool) {
	v := m.difficulty_level
	if v == nil {
		return
	}
	return *v, true
}

// OldDifficultyLevel returns the old "difficulty_level" field's value of the Chapter entity.
// If the Chapter object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChapterMutation) OldDifficultyLevel(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDifficultyLevel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDifficultyLevel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDifficultyLevel: %w", err)
	}
	return oldValue.DifficultyLevel, nil
}

// ResetDifficultyLevel resets all changes to the "difficulty_level" field.
func (m *ChapterMutation) ResetDifficultyLevel() {
	m.difficulty_level = nil
}

// SetEstimatedStudyTime sets the "estimated_study_time" field.
func (m *ChapterMutation) SetEstimatedStudyTime(i int) {
	m.estimated_study_time = &i
	m.addestimated_study_time = nil
}

// EstimatedStudyTime returns the value of the "estimated_study_time" field in the mutation.
func (m *ChapterMutation) EstimatedStudyTime() (r int, exists bool) {
	v := m.estimated_study_time
	if v == nil {
		return
	}
	return *v, true
}

// OldEstimatedStudyTime returns the old "estimated_study_time" field's value of the Chapter entity.
// If the Chapter object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChapterMutation) OldEstimatedStudyTime(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEstimatedStudyTime is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEstimatedStudyTime requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEstimatedStudyTime: %w", err)
	}
	return oldValue.EstimatedStudyTime, nil
}

// AddEstimatedStudyTime adds i to the "estimated_study_time" field.
func (m *ChapterMutation) AddEstimatedStudyTime(i int) {
	if m.addestimated_study_time != nil {
		*m.addestimated_study_time += i
	} else {
		m.addestimated_study_time = &i
	}
}

// AddedEstimatedStudyTime returns the value that was added to the "estimated_study_time" field in this mutation.
func (m *ChapterMutation) AddedEstimatedStudyTime() (r int, exists bool) {
	v := m.addestimated_study_time
	if v == nil {
		return
	}
	return *v, true
}

// ResetEstimatedStudyTime resets all changes to the "estimated_study_time" field.
func (m *ChapterMutation) ResetEstimatedStudyTime() {
	m.estimated_study_time = nil
	m.addestimated_study_time = nil
}

// SetTotalContentBlocks sets the "total_content_blocks" field.
func (m *ChapterMutation) SetTotalContentBlocks(i int) {
	m.total_content_blocks = &i
	m.addtotal_content_blocks = nil
}

// TotalContentBlocks returns the value of the "total_content_blocks" field in the mutation.
func (m *ChapterMutation) TotalContentBlocks() (r int, exists bool) {
	v := m.total_content_blocks
	if v == nil {
		return
	}
	return *v, true
}

// OldTotalContentBlocks returns the old "total_content_blocks" field's value of the Chapter entity.
// If the Chapter object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChapterMutation) OldTotalContentBlocks(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTotalContentBlocks is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTotalContentBlocks requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTotalContentBlocks: %w", err)
	}
	return oldValue.TotalContentBlocks, nil
}

// AddTotalContentBlocks adds i to the "total_content_blocks" field.
func (m *ChapterMutation) AddTotalContentBlocks(i int) {
	if m.addtotal_content_blocks != nil {
		*m.addtotal_content_blocks += i
	} else {
		m.addtotal_content_blocks = &i
	}
}

// AddedTotalContentBlocks returns the value that was added to the "total_content_blocks" field in this mutation.
func (m *ChapterMutation) AddedTotalContentBlocks() (r int, exists bool) {
	v := m.addtotal_content_blocks
	if v == nil {
		return
	}
	return *v, true
}

// ResetTotalContentBlocks resets all changes to the "total_content_blocks" field.
func (m *ChapterMutation) ResetTotalContentBlocks() {
	m.total_content_blocks = nil
	m.addtotal_content_blocks = nil
}

// SetConceptCount sets the "concept_count" field.
func (m *ChapterMutation) SetConceptCount(i int) {
	m.concept_count = &i
	m.addconcept_count = nil
}

// ConceptCount returns the value of the "concept_count" field in the mutation.
func (m *ChapterMutation) ConceptCount() (r int, exists bool) {
	v := m.concept_count
	if v == nil {
		return
	}
	return *v, true
}

// OldConceptCount returns the old "concept_count" field's value of the Chapter entity.
// If the Chapter object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChapterMutation) OldConceptCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConceptCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConceptCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConceptCount: %w", err)
	}
	return oldValue.ConceptCount, nil
}

// AddConceptCount adds i to the "concept_count" field.
func (m *ChapterMutation) AddConceptCount(i int) {
	if m.addconcept_count != nil {
		*m.addconcept_count += i
	} else {
		m.addconcept_count = &i
	}
}

// AddedConceptCount returns the value that was added to the "concept_count" field in this mutation.
func (m *ChapterMutation) AddedConceptCount() (r int, exists bool) {
	v := m.addconcept_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetConceptCount resets all changes to the "concept_count" field.
func (m *ChapterMutation) ResetConceptCount() {
	m.concept_count = nil
	m.addconcept_count = nil
}

// SetVisualizationCount sets the "visualization_count" field.
func (m *ChapterMutation) SetVisualizationCount(i int) {
	m.visualization_count = &i
	m.addvisualization_count = nil
}

// VisualizationCount returns the value of the "visualization_count" field in the mutation.
func (m *ChapterMutation) VisualizationCount() (r int, exists bool) {
	v := m.visualization_count
	if v == nil {
		return
	}
	return *v, true
}

// OldVisualizationCount returns the old "visualization_count" field's value of the Chapter entity.
// If the Chapter object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChapterMutation) OldVisualizationCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVisualizationCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVisualizationCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVisualizationCount: %w", err)
	}
	return oldValue.VisualizationCount, nil
}

// AddVisualizationCount adds i to the "visualization_count" field.
func (m *ChapterMutation) AddVisualizationCount(i int) {
	if m.addvisualization_count != nil {
		*m.addvisualization_count += i
	} else {
		m.addvisualization_count = &i
	}
}

// AddedVisualizationCount returns the value that was added to the "visualization_count" field in this mutation.
func (m *ChapterMutation) AddedVisualizationCount() (r int, exists bool) {
	v := m.addvisualization_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetVisualizationCount resets all changes to the "visualization_count" field.
func (m *ChapterMutation) ResetVisualizationCount() {
	m.visualization_count = nil
	m.addvisualization_count = nil
}

// SetExerciseCount sets the "exercise_count" field.
func (m *ChapterMutation) SetExerciseCount(i int) {
	m.exercise_count = &i
	m.addexercise_count = nil
}

// ExerciseCount returns the value of the "exercise_count" field in the mutation.
func (m *ChapterMutation) ExerciseCount() (r int, exists bool) {
	v := m.exercise_count
	if v == nil {
		return
	}
	return *v, true
}

// OldExerciseCount returns the old "exercise_count" field's value of the Chapter entity.
// If the Chapter object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChapterMutation) OldExerciseCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExerciseCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExerciseCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExerciseCount: %w", err)
	}
	return oldValue.ExerciseCount, nil
}

// AddExerciseCount adds i to the "exercise_count" field.
func (m *ChapterMutation) AddExerciseCount(i int) {
	if m.addexercise_count != nil {
		*m.addexercise_count += i
	} else {
		m.addexercise_count = &i
	}
}

// AddedExerciseCount returns the value that was added to the "exercise_count" field in this mutation.
func (m *ChapterMutation) AddedExerciseCount() (r int, exists bool) {
	v := m.addexercise_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetExerciseCount resets all changes to the "exercise_count" field.
func (m *ChapterMutation) ResetExerciseCount() {
	m.exercise_count = nil
	m.addexercise_count = nil
}

// SetCaseStudyCount sets the "case_study_count" field.
func (m *ChapterMutation) SetCaseStudyCount(i int) {
	m.case_study_count = &i
	m.addcase_study_count = nil
}

// CaseStudyCount returns the value of the "case_study_count" field in the mutation.
func (m *ChapterMutation) CaseStudyCount() (r int, exists bool) {
	v := m.case_study_count
	if v == nil {
		return
	}
	return *v, true
}

// OldCaseStudyCount returns the old "case_study_count" field's value of the Chapter entity.
// If the Chapter object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChapterMutation) OldCaseStudyCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCaseStudyCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCaseStudyCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCaseStudyCount: %w", err)
	}
	return oldValue.CaseStudyCount, nil
}

// AddCaseStudyCount adds i to the "case_study_count" field.
func (m *ChapterMutation) AddCaseStudyCount(i int) {
	if m.addcase_study_count != nil {
		*m.addcase_study_count += i
	} else {
		m.addcase_study_count = &i
	}
}

// AddedCaseStudyCount returns the value that was added to the "case_study_count" field in this mutation.
func (m *ChapterMutation) AddedCaseStudyCount() (r int, exists bool) {
	v := m.addcase_study_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetCaseStudyCount resets all changes to the "case_study_count" field.
func (m *ChapterMutation) ResetCaseStudyCount() {
	m.case_study_count = nil
	m.addcase_study_count = nil
}

// SetSubjectID sets the "subject_id" field.
func (m *ChapterMutation) SetSubjectID(i int) {
	m.subject = &i
}

// SubjectID returns the value of the "subject_id" field in the mutation.
func (m *ChapterMutation) SubjectID() (r int, exists bool) {
	v := m.subject
	if v == nil {
		return
	}
	return *v, true
}

// OldSubjectID returns the old "subject_id" field's value of the Chapter entity.
// If the Chapter object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChapterMutation) OldSubjectID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSubjectID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSubjectID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSubjectID: %w", err)
	}
	return oldValue.SubjectID, nil
}

// ResetSubjectID resets all changes to the "subject_id" field.
func (m *ChapterMutation) ResetSubjectID() {
	m.subject = nil
}

// ClearSubject clears the "subject" edge to the Subject entity.
func (m *ChapterMutation) ClearSubject() {
	m.clearedsubject = true
	m.clearedFields[chapter.FieldSubjectID] = struct{}{}
}

// SubjectCleared reports if the "subject" edge to the Subject entity was cleared.
func (m *ChapterMutation) SubjectCleared() bool {
	return m.clearedsubject
}

// SubjectIDs returns the "subject" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// SubjectID instead. It exists only for internal usage by the builders.
func (m *ChapterMutation) SubjectIDs() (ids []int) {
	if id := m.subject; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetSubject resets all changes to the "subject" edge.
func (m *ChapterMutation) ResetSubject() {
	m.subject = nil
	m.clearedsubject = false
}

// AddProgresIDs adds the "progress" edge to the UserProgress entity by ids.
func (m *ChapterMutation) AddProgresIDs(ids ...int) {
	if m.progress == nil {
		m.progress = make(map[int]struct{})
	}
	for i := range ids {
		m.progress[ids[i]] = struct{}{}
	}
}

// ClearProgress clears the "progress" edge to the UserProgress entity.
func (m *ChapterMutation) ClearProgress() {
	m.clearedprogress = true
}

// ProgressCleared reports if the "progress" edge to the UserProgress entity was cleared.
func (m *ChapterMutation) ProgressCleared() bool {
	return m.clearedprogress
}

// RemoveProgresIDs removes the "progress" edge to the UserProgress entity by IDs.
func (m *ChapterMutation) RemoveProgresIDs(ids ...int) {
	if m.removedprogress == nil {
		m.removedprogress = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.progress, ids[i])
		m.removedprogress[ids[i]] = struct{}{}
	}
}

// RemovedProgress returns the removed IDs of the "progress" edge to the UserProgress entity.
func (m *ChapterMutation) RemovedProgressIDs() (ids []int) {
	for id := range m.removedprogress {
		ids = append(ids, id)
	}
	return
}

// ProgressIDs returns the "progress" edge IDs in the mutation.
func (m *ChapterMutation) ProgressIDs() (ids []int) {
	for id := range m.progress {
		ids = append(ids, id)
	}
	return
}

// ResetProgress resets all changes to the "progress" edge.
func (m *ChapterMutation) ResetProgress() {
	m.progress = nil
	m.clearedprogress = false
	m.removedprogress = nil
}

// AddBookmarkIDs adds the "bookmarks" edge to the Bookmark entity by ids.
func (m *ChapterMutation) AddBookmarkIDs(ids ...int) {
	if m.bookmarks == nil {
		m.bookmarks = make(map[int]struct{})
	}
	for i := range ids {
		m.bookmarks[ids[i]] = struct{}{}
	}
}

// ClearBookmarks clears the "bookmarks" edge to the Bookmark entity.
func (m *ChapterMutation) ClearBookmarks() {
	m.clearedbookmarks = true
}

// BookmarksCleared reports if the "bookmarks" edge to the Bookmark entity was cleared.
func (m *ChapterMutation) BookmarksCleared() bool {
	return m.clearedbookmarks
}

// RemoveBookmarkIDs removes the "bookmarks" edge to the Bookmark entity by IDs.
func (m *ChapterMutation) RemoveBookmarkIDs(ids ...int) {
	if m.removedbookmarks == nil {
		m.removedbookmarks = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.bookmarks, ids[i])
		m.removedbookmarks[ids[i]] = struct{}{}
	}
}

// RemovedBookmarks returns the removed IDs of the "bookmarks" edge to the Bookmark entity.
func (m *ChapterMutation) RemovedBookmarksIDs() (ids []int) {
	for id := range m.removedbookmarks {
		ids = append(ids, id)
	}
	return
}

// BookmarksIDs returns the "bookmarks" edge IDs in the mutation.
func (m *ChapterMutation) BookmarksIDs() (ids []int) {
	for id := range m.bookmarks {
		ids = append(ids, id)
	}
	return
}

// ResetBookmarks resets all changes to the "bookmarks" edge.
func (m *ChapterMutation) ResetBookmarks() {
	m.bookmarks = nil
	m.clearedbookmarks = false
	m.removedbookmarks = nil
}

// AddQuizResultIDs adds the "quiz_results" edge to the QuizResult entity by ids.
func (m *ChapterMutation) AddQuizResultIDs(ids ...int) {
	if m.quiz_results == nil {
		m.quiz_results = make(map[int]struct{})
	}
	for i := range ids {
		m.quiz_results[ids[i]] = struct{}{}
	}
}

// ClearQuizResults clears the "quiz_results" edge to the QuizResult entity.
func (m *ChapterMutation) ClearQuizResults() {
	m.clearedquiz_results = true
}

// QuizResultsCleared reports if the "quiz_results" edge to the QuizResult entity was cleared.
func (m *ChapterMutation) QuizResultsCleared() bool {
	return m.clearedquiz_results
}

// RemoveQuizResultIDs removes the "quiz_results" edge to the QuizResult entity by IDs.
func (m *ChapterMutation) RemoveQuizResultIDs(ids ...int) {
	if m.removedquiz_results == nil {
		m.removedquiz_results = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.quiz_results, ids[i])
		m.removedquiz_results[ids[i]] = struct{}{}
	}
}

// RemovedQuizResults returns the removed IDs of the "quiz_results" edge to the QuizResult entity.
func (m *ChapterMutation) RemovedQuizResultsIDs() (ids []int) {
	for id := range m.removedquiz_results {
		ids = append(ids, id)
	}
	return
}

// QuizResultsIDs returns the "quiz_results" edge IDs in the mutation.
func (m *ChapterMutation) QuizResultsIDs() (ids []int) {
	for id := range m.quiz_results {
		ids = append(ids, id)
	}
	return
}

// ResetQuizResults resets all changes to the "quiz_results" edge.
func (m *ChapterMutation) ResetQuizResults() {
	m.quiz_results = nil
	m.clearedquiz_results = false
	m.removedquiz_results = nil
}

// AddStudySessionIDs adds the "study_sessions" edge to the StudySession entity by ids.
func (m *ChapterMutation) AddStudySessionIDs(ids ...int) {
	if m.study_sessions == nil {
		m.study_sessions = make(map[int]struct{})
	}
	for i := range ids {
		m.study_sessions[ids[i]] = struct{}{}
	}
}

// ClearStudySessions clears the "study_sessions" edge to the StudySession entity.
func (m *ChapterMutation) ClearStudySessions() {
	m.clearedstudy_sessions = true
}

// StudySessionsCleared reports if the "study_sessions" edge to the StudySession entity was cleared.
func (m *ChapterMutation) StudySessionsCleared() bool {
	return m.clearedstudy_sessions
}

// RemoveStudySessionIDs removes the "study_sessions" edge to the StudySession entity by IDs.
func (m *ChapterMutation) RemoveStudySessionIDs(ids ...int) {
	if m.removedstudy_sessions == nil {
		m.removedstudy_sessions = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.study_sessions, ids[i])
		m.removedstudy_sessions[ids[i]] = struct{}{}
	}
}

// RemovedStudySessions returns the removed IDs of the "study_sessions" edge to the StudySession entity.
func (m *ChapterMutation) RemovedStudySessionsIDs() (ids []int) {
	for id := range m.removedstudy_sessions {
		ids = append(ids, id)
	}
	return
}

// StudySessionsIDs returns the "study_sessions" edge IDs in the mutation.
func (m *ChapterMutation) StudySessionsIDs() (ids []int) {
	for id := range m.study_sessions {
		ids = append(ids, id)
	}
	return
}

// ResetStudySessions resets all changes to the "study_sessions" edge.
func (m *ChapterMutation) ResetStudySessions() {
	m.study_sessions = nil
	m.clearedstudy_sessions = false
	m.removedstudy_sessions = nil
}

// Where appends a list predicates to the ChapterMutation builder.
func (m *ChapterMutation) Where(ps ...predicate.Chapter) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ChapterMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ChapterMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Chapter, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ChapterMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ChapterMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Chapter).
func (m *ChapterMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ChapterMutation) Fields() []string {
	fields := make([]string, 0, 15)
	if m.created_at != nil {
		fields = append(fields, chapter.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, chapter.FieldUpdatedAt)
	}
	if m.title != nil {
		fields = append(fields, chapter.FieldTitle)
	}
	if m.chapter_number != nil {
		fields = append(fields, chapter.FieldChapterNumber)
	}
	if m.intro_summary != nil {
		fields = append(fields, chapter.FieldIntroSummary)
	}
	if m.content_blocks != nil {
		fields = append(fields, chapter.FieldContentBlocks)
	}
	if m.chapter_metadata != nil {
		fields = append(fields, chapter.FieldChapterMetadata)
	}
	if m.difficulty_level != nil {
		fields = append(fields, chapter.FieldDifficultyLevel)
	}
	if m.estimated_study_time != nil {
		fields = append(fields, chapter.FieldEstimatedStudyTime)
	}
	if m.total_content_blocks != nil {
		fields = append(fields, chapter.FieldTotalContentBlocks)
	}
	if m.concept_count != nil {
		fields = append(fields, chapter.FieldConceptCount)
	}
	if m.visualization_count != nil {
		fields = append(fields, chapter.FieldVisualizationCount)
	}
	if m.exercise_count != nil {
		fields = append(fields, chapter.FieldExerciseCount)
	}
	if m.case_study_count != nil {
		fields = append(fields, chapter.FieldCaseStudyCount)
	}
	if m.subject != nil {
		fields = append(fields, chapter.FieldSubjectID)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ChapterMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case chapter.FieldCreatedAt:
		return m.CreatedAt()
	case chapter.FieldUpdatedAt:
		return m.UpdatedAt()
	case chapter.FieldTitle:
		return m.Title()
	case chapter.FieldChapterNumber:
		return m.ChapterNumber()
	case chapter.FieldIntroSummary:
		return m.IntroSummary()
	case chapter.FieldContentBlocks:
		return m.ContentBlocks()
	case chapter.FieldChapterMetadata:
		return m.ChapterMetadata()
	case chapter.FieldDifficultyLevel:
		return m.DifficultyLevel()
	case chapter.FieldEstimatedStudyTime:
		return m.EstimatedStudyTime()
	case chapter.FieldTotalContentBlocks:
		return m.TotalContentBlocks()
	case chapter.FieldConceptCount:
		return m.ConceptCount()
	case chapter.FieldVisualizationCount:
		return m.VisualizationCount()
	case chapter.FieldExerciseCount:
		return m.ExerciseCount()
	case chapter.FieldCaseStudyCount:
		return m.CaseStudyCount()
	case chapter.FieldSubjectID:
		return m.SubjectID()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ChapterMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case chapter.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case chapter.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case chapter.FieldTitle:
		return m.OldTitle(ctx)
	case chapter.FieldChapterNumber:
		return m.OldChapterNumber(ctx)
	case chapter.FieldIntroSummary:
		return m.OldIntroSummary(ctx)
	case chapter.FieldContentBlocks:
		return m.OldContentBlocks(ctx)
	case chapter.FieldChapterMetadata:
		return m.OldChapterMetadata(ctx)
	case chapter.FieldDifficultyLevel:
		return m.OldDifficultyLevel(ctx)
	case chapter.FieldEstimatedStudyTime:
		return m.OldEstimatedStudyTime(ctx)
	case chapter.FieldTotalContentBlocks:
		return m.OldTotalContentBlocks(ctx)
	case chapter.FieldConceptCount:
		return m.OldConceptCount(ctx)
	case chapter.FieldVisualizationCount:
		return m.OldVisualizationCount(ctx)
	case chapter.FieldExerciseCount:
		return m.OldExerciseCount(ctx)
	case chapter.FieldCaseStudyCount:
		return m.OldCaseStudyCount(ctx)
	case chapter.FieldSubjectID:
		return m.OldSubjectID(ctx)
	}
	return nil, fmt.Errorf("unknown Chapter field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ChapterMutation) SetField(name string, value ent.Value) error {
	switch name {
	case chapter.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case chapter.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case chapter.FieldTitle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTitle(v)
		return nil
	case chapter.FieldChapterNumber:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetChapterNumber(v)
		return nil
	case chapter.FieldIntroSummary:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIntroSummary(v)
		return nil
	case chapter.FieldContentBlocks:
		v, ok := value.([]map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContentBlocks(v)
		return nil
	case chapter.FieldChapterMetadata:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetChapterMetadata(v)
		return nil
	case chapter.FieldDifficultyLevel:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDifficultyLevel(v)
		return nil
	case chapter.FieldEstimatedStudyTime:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEstimatedStudyTime(v)
		return nil
	case chapter.FieldTotalContentBlocks:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTotalContentBlocks(v)
		return nil
	case chapter.FieldConceptCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConceptCount(v)
		return nil
	case chapter.FieldVisualizationCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVisualizationCount(v)
		return nil
	case chapter.FieldExerciseCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExerciseCount(v)
		return nil
	case chapter.FieldCaseStudyCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCaseStudyCount(v)
		return nil
	case chapter.FieldSubjectID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSubjectID(v)
		return nil
	}
	return fmt.Errorf("unknown Chapter field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ChapterMutation) AddedFields() []string {
	var fields []string
	if m.addchapter_number != nil {
		fields = append(fields, chapter.FieldChapterNumber)
	}
	if m.addestimated_study_time != nil {
		fields = append(fields, chapter.FieldEstimatedStudyTime)
	}
	if m.addtotal_content_blocks != nil {
		fields = append(fields, chapter.FieldTotalContentBlocks)
	}
	if m.addconcept_count != nil {
		fields = append(fields, chapter.FieldConceptCount)
	}
	if m.addvisualization_count != nil {
		fields = append(fields, chapter.FieldVisualizationCount)
	}
	if m.addexercise_count != nil {
		fields = append(fields, chapter.FieldExerciseCount)
	}
	if m.addcase_study_count != nil {
		fields = append(fields, chapter.FieldCaseStudyCount)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ChapterMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case chapter.FieldChapterNumber:
		return m.AddedChapterNumber()
	case chapter.FieldEstimatedStudyTime:
		return m.AddedEstimatedStudyTime()
	case chapter.FieldTotalContentBlocks:
		return m.AddedTotalContentBlocks()
	case chapter.FieldConceptCount:
		return m.AddedConceptCount()
	case chapter.FieldVisualizationCount:
		return m.AddedVisualizationCount()
	case chapter.FieldExerciseCount:
		return m.AddedExerciseCount()
	case chapter.FieldCaseStudyCount:
		return m.AddedCaseStudyCount()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ChapterMutation) AddField(name string, value ent.Value) error {
	switch name {
	case chapter.FieldChapterNumber:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddChapterNumber(v)
		return nil
	case chapter.FieldEstimatedStudyTime:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddEstimatedStudyTime(v)
		return nil
	case chapter.FieldTotalContentBlocks:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTotalContentBlocks(v)
		return nil
	case chapter.FieldConceptCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddConceptCount(v)
		return nil
	case chapter.FieldVisualizationCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddVisualizationCount(v)
		return nil
	case chapter.FieldExerciseCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddExerciseCount(v)
		return nil
	case chapter.FieldCaseStudyCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCaseStudyCount(v)
		return nil
	}
	return fmt.Errorf("unknown Chapter numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ChapterMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(chapter.FieldIntroSummary) {
		fields = append(fields, chapter.FieldIntroSummary)
	}
	if m.FieldCleared(chapter.FieldContentBlocks) {
		fields = append(fields, chapter.FieldContentBlocks)
	}
	if m.FieldCleared(chapter.FieldChapterMetadata) {
		fields = append(fields, chapter.FieldChapterMetadata)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ChapterMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ChapterMutation) ClearField(name string) error {
	switch name {
	case chapter.FieldIntroSummary:
		m.ClearIntroSummary()
		return nil
	case chapter.FieldContentBlocks:
		m.ClearContentBlocks()
		return nil
	case chapter.FieldChapterMetadata:
		m.ClearChapterMetadata()
		return nil
	}
	return fmt.Errorf("unknown Chapter nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ChapterMutation) ResetField(name string) error {
	switch name {
	case chapter.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case chapter.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case chapter.FieldTitle:
		m.ResetTitle()
		return nil
	case chapter.FieldChapterNumber:
		m.ResetChapterNumber()
		return nil
	case chapter.FieldIntroSummary:
		m.ResetIntroSummary()
		return nil
	case chapter.FieldContentBlocks:
		m.ResetContentBlocks()
		return nil
	case chapter.FieldChapterMetadata:
		m.ResetChapterMetadata()
		return nil
	case chapter.FieldDifficultyLevel:
		m.ResetDifficultyLevel()
		return nil
	case chapter.FieldEstimatedStudyTime:
		m.ResetEstimatedStudyTime()
		return nil
	case chapter.FieldTotalContentBlocks:
		m.ResetTotalContentBlocks()
		return nil
	case chapter.FieldConceptCount:
		m.ResetConceptCount()
		return nil
	case chapter.FieldVisualizationCount:
		m.ResetVisualizationCount()
		return nil
	case chapter.FieldExerciseCount:
		m.ResetExerciseCount()
		return nil
	case chapter.FieldCaseStudyCount:
		m.ResetCaseStudyCount()
		return nil
	case chapter.FieldSubjectID:
		m.ResetSubjectID()
		return nil
	}
	return fmt.Errorf("unknown Chapter field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ChapterMutation) AddedEdges() []string {
	edges := make([]string, 0, 5)
	if m.subject != nil {
		edges = append(edges, chapter.EdgeSubject)
	}
	if m.progress != nil {
		edges = append(edges, chapter.EdgeProgress)
	}
	if m.bookmarks != nil {
		edges = append(edges, chapter.EdgeBookmarks)
	}
	if m.quiz_results != nil {
		edges = append(edges, chapter.EdgeQuizResults)
	}
	if m.study_sessions != nil {
		edges = append(edges, chapter.EdgeStudySessions)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ChapterMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case chapter.EdgeSubject:
		if id := m.subject; id != nil {
			return []ent.Value{*id}
		}
	case chapter.EdgeProgress:
		ids := make([]ent.Value, 0, len(m.progress))
		for id := range m.progress {
			ids = append(ids, id)
		}
		return ids
	case chapter.EdgeBookmarks:
		ids := make([]ent.Value, 0, len(m.bookmarks))
		for id := range m.bookmarks {
			ids = append(ids, id)
		}
		return ids
	case chapter.EdgeQuizResults:
		ids := make([]ent.Value, 0, len(m.quiz_results))
		for id := range m.quiz_results {
			ids = append(ids, id)
		}
		return ids
	case chapter.EdgeStudySessions:
		ids := make([]ent.Value, 0, len(m.study_sessions))
		for id := range m.study_sessions {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ChapterMutation) RemovedEdges() []string {
	edges := make([]string, 0, 5)
	if m.removedprogress != nil {
		edges = append(edges, chapter.EdgeProgress)
	}
	if m.removedbookmarks != nil {
		edges = append(edges, chapter.EdgeBookmarks)
	}
	if m.removedquiz_results != nil {
		edges = append(edges, chapter.EdgeQuizResults)
	}
	if m.removedstudy_sessions != nil {
		edges = append(edges, chapter.EdgeStudySessions)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ChapterMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case chapter.EdgeProgress:
		ids := make([]ent.Value, 0, len(m.removedprogress))
		for id := range m.removedprogress {
			ids = append(ids, id)
		}
		return ids
	case chapter.EdgeBookmarks:
		ids := make([]ent.Value, 0, len(m.removedbookmarks))
		for id := range m.removedbookmarks {
			ids = append(ids, id)
		}
		return ids
	case chapter.EdgeQuizResults:
		ids := make([]ent.Value, 0, len(m.removedquiz_results))
		for id := range m.removedquiz_results {
			ids = append(ids, id)
		}
		return ids
	case chapter.EdgeStudySessions:
		ids := make([]ent.Value, 0, len(m.removedstudy_sessions))
		for id := range m.removedstudy_sessions {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ChapterMutation) ClearedEdges() []string {
	edges := make([]string, 0, 5)
	if m.clearedsubject {
		edges = append(edges, chapter.EdgeSubject)
	}
	if m.clearedprogress {
		edges = append(edges, chapter.EdgeProgress)
	}
	if m.clearedbookmarks {
		edges = append(edges, chapter.EdgeBookmarks)
	}
	if m.clearedquiz_results {
		edges = append(edges, chapter.EdgeQuizResults)
	}
	if m.clearedstudy_sessions {
		edges = append(edges, chapter.EdgeStudySessions)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ChapterMutation) EdgeCleared(name string) bool {
	switch name {
	case chapter.EdgeSubject:
		return m.clearedsubject
	case chapter.EdgeProgress:
		return m.clearedprogress
	case chapter.EdgeBookmarks:
		return m.clearedbookmarks
	case chapter.EdgeQuizResults:
		return m.clearedquiz_results
	case chapter.EdgeStudySessions:
		return m.clearedstudy_sessions
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ChapterMutation) ClearEdge(name string) error {
	switch name {
	case chapter.EdgeSubject:
		m.ClearSubject()
		return nil
	}
	return fmt.Errorf("unknown Chapter unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ChapterMutation) ResetEdge(name string) error {
	switch name {
	case chapter.EdgeSubject:
		m.ResetSubject()
		return nil
	case chapter.EdgeProgress:
		m.ResetProgress()
		return nil
	case chapter.EdgeBookmarks:
		m.ResetBookmarks()
		return nil
	case chapter.EdgeQuizResults:
		m.ResetQuizResults()
		return nil
	case chapter.EdgeStudySessions:
		m.ResetStudySessions()
		return nil
	}
	return fmt.Errorf("unknown Chapter edge %s", name)
}

// CourseMutation represents an operation that mutates the Course nodes in the graph.
type CourseMutation struct {
	config
	op                       Op
	typ                      string
	id                       *int
	created_at               *time.Time
	updated_at               *time.Time
	name                     *string
	description              *string
	academic_level           *string
	institution              *string
	instructor               *string
	semester                 *string
	total_subjects           *int
	addtotal_subjects        *int
	total_chapters           *int
	addtotal_chapters        *int
	estimated_study_hours    *int
	addestimated_study_hours *int
	clearedFields            map[string]struct{}
	subjects                 map[int]struct{}
	removedsubjects          map[int]struct{}
	clearedsubjects          bool
	enrollments              map[int]struct{}
	removedenrollments       map[int]struct{}
	clearedenrollments       bool
	study_sessions           map[int]struct{}
	removedstudy_sessions    map[int]struct{}
	clearedstudy_sessions    bool
	done                     bool
	oldValue                 func(context.Context) (*Course, error)
	predicates               []predicate.Course
}

var _ ent.Mutation = (*CourseMutation)(nil)

// courseOption allows management of the mutation configuration using functional options.
type courseOption func(*CourseMutation)

// newCourseMutation creates new mutation for the Course entity.
func newCourseMutation(c config, op Op, opts ...courseOption) *CourseMutation {
	m := &CourseMutation{
		config:        c,
		op:            op,
		typ:           TypeCourse,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withCourseID sets the ID field of the mutation.
func withCourseID(id int) courseOption {
	return func(m *CourseMutation) {
		var (
			err   error
			once  sync.Once
			value *Course
		)
		m.oldValue = func(ctx context.Context) (*Course, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Course.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withCourse sets the old Course of the mutation.
func withCourse(node *Course) courseOption {
	return func(m *CourseMutation) {
		m.oldValue = func(context.Context) (*Course, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m CourseMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m CourseMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *CourseMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *CourseMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Course.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *CourseMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *CourseMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Course entity.
// If the Course object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CourseMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *CourseMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *CourseMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *CourseMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Course entity.
// If the Course object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CourseMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *CourseMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetName sets the "name" field.
func (m *CourseMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *CourseMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Course entity.
// If the Course object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CourseMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *CourseMutation) ResetName() {
	m.name = nil
}

// SetDescription sets the "description" field.
func (m *CourseMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *CourseMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the Course entity.
// If the Course object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CourseMutation) OldDescription(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ClearDescription clears the value of the "description" field.
func (m *CourseMutation) ClearDescription() {
	m.description = nil
	m.clearedFields[course.FieldDescription] = struct{}{}
}

// DescriptionCleared returns if the "description" field was cleared in this mutation.
func (m *CourseMutation) DescriptionCleared() bool {
	_, ok := m.clearedFields[course.FieldDescription]
	return ok
}

// ResetDescription resets all changes to the "description" field.
func (m *CourseMutation) ResetDescription() {
	m.description = nil
	delete(m.clearedFields, course.FieldDescription)
}

// SetAcademicLevel sets the "academic_level" field.
func (m *CourseMutation) SetAcademicLevel(s string) {
	m.academic_level = &s
}

// AcademicLevel returns the value of the "academic_level" field in the mutation.
func (m *CourseMutation) AcademicLevel() (r string, exists bool) {
	v := m.academic_level
	if v == nil {
		return
	}
	return *v, true
}

// OldAcademicLevel returns the old "academic_level" field's value of the Course entity.
// If the Course object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CourseMutation) OldAcademicLevel(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAcademicLevel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAcademicLevel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAcademicLevel: %w", err)
	}
	return oldValue.AcademicLevel, nil
}

// ResetAcademicLevel resets all changes to the "academic_level" field.
func (m *CourseMutation) ResetAcademicLevel() {
	m.academic_level = nil
}

// SetInstitution sets the "institution" field.
func (m *CourseMutation) SetInstitution(s string) {
	m.institution = &s
}

// Institution returns the value of the "institution" field in the mutation.
func (m *CourseMutation) Institution() (r string, exists bool) {
	v := m.institution
	if v == nil {
		return
	}
	return *v, true
}

// OldInstitution returns the old "institution" field's value of the Course entity.
// If the Course object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CourseMutation) OldInstitution(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInstitution is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInstitution requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInstitution: %w", err)
	}
	return oldValue.Institution, nil
}

// ClearInstitution clears the value of the "institution" field.
func (m *CourseMutation) ClearInstitution() {
	m.institution = nil
	m.clearedFields[course.FieldInstitution] = struct{}{}
}

// InstitutionCleared returns if the "institution" field was cleared in this mutation.
func (m *CourseMutation) InstitutionCleared() bool {
	_, ok := m.clearedFields[course.FieldInstitution]
	return ok
}

// ResetInstitution resets all changes to the "institution" field.
func (m *CourseMutation) ResetInstitution() {
	m.institution = nil
	delete(m.clearedFields, course.FieldInstitution)
}

// SetInstructor sets the "instructor" field.
func (m *CourseMutation) SetInstructor(s string) {
	m.instructor = &s
}

// Instructor returns the value of the "instructor" field in the mutation.
func (m *CourseMutation) Instructor() (r string, exists bool) {
	v := m.instructor
	if v == nil {
		return
	}
	return *v, true
}

// OldInstructor returns the old "instructor" field's value of the Course entity.
// If the Course object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CourseMutation) OldInstructor(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInstructor is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInstructor requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInstructor: %w", err)
	}
	return oldValue.Instructor, nil
}

// ClearInstructor clears the value of the "instructor" field.
func (m *CourseMutation) ClearInstructor() {
	m.instructor = nil
	m.clearedFields[course.FieldInstructor] = struct{}{}
}

// InstructorCleared returns if the "instructor" field was cleared in this mutation.
func (m *CourseMutation) InstructorCleared() bool {
	_, ok := m.clearedFields[course.FieldInstructor]
	return ok
}

// ResetInstructor resets all changes to the "instructor" field.
func (m *CourseMutation) ResetInstructor() {
	m.instructor = nil
	delete(m.clearedFields, course.FieldInstructor)
}

// SetSemester sets the "semester" field.
func (m *CourseMutation) SetSemester(s string) {
	m.semester = &s
}

// Semester returns the value of the "semester" field in the mutation.
func (m *CourseMutation) Semester() (r string, exists bool) {
	v := m.semester
	if v == nil {
		return
	}
	return *v, true
}

// OldSemester returns the old "semester" field's value of the Course entity.
// If the Course object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CourseMutation) OldSemester(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSemester is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSemester requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSemester: %w", err)
	}
	return oldValue.Semester, nil
}

// ClearSemester clears the value of the "semester" field.
func (m *CourseMutation) ClearSemester() {
	m.semester = nil
	m.clearedFields[course.FieldSemester] = struct{}{}
}

// SemesterCleared returns if the "semester" field was cleared in this mutation.
func (m *CourseMutation) SemesterCleared() bool {
	_, ok := m.clearedFields[course.FieldSemester]
	return ok
}

// ResetSemester resets all changes to the "semester" field.
func (m *CourseMutation) ResetSemester() {
	m.semester = nil
	delete(m.clearedFields, course.FieldSemester)
}

// SetTotalSubjects sets the "total_subjects" field.
func (m *CourseMutation) SetTotalSubjects(i int) {
	m.total_subjects = &i
	m.addtotal_subjects = nil
}

// TotalSubjects returns the value of the "total_subjects" field in the mutation.
func (m *CourseMutation) TotalSubjects() (r int, exists bool) {
	v := m.total_subjects
	if v == nil {
		return
	}
	return *v, true
}

// OldTotalSubjects returns the old "total_subjects" field's value of the Course entity.
// If the Course object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CourseMutation) OldTotalSubjects(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTotalSubjects is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTotalSubjects requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTotalSubjects: %w", err)
	}
	return oldValue.TotalSubjects, nil
}

// AddTotalSubjects adds i to the "total_subjects" field.
func (m *CourseMutation) AddTotalSubjects(i int) {
	if m.addtotal_subjects != nil {
		*m.addtotal_subjects += i
	} else {
		m.addtotal_subjects = &i
	}
}

// AddedTotalSubjects returns the value that was added to the "total_subjects" field in this mutation.
func (m *CourseMutation) AddedTotalSubjects() (r int, exists bool) {
	v := m.addtotal_subjects
	if v == nil {
		return
	}
	return *v, true
}

// ResetTotalSubjects resets all changes to the "total_subjects" field.
func (m *CourseMutation) ResetTotalSubjects() {
	m.total_subjects = nil
	m.addtotal_subjects = nil
}

// SetTotalChapters sets the "total_chapters" field.
func (m *CourseMutation) SetTotalChapters(i int) {
	m.total_chapters = &i
	m.addtotal_chapters = nil
}

// TotalChapters returns the value of the "total_chapters" field in the mutation.
func (m *CourseMutation) TotalChapters() (r int, exists bool) {
	v := m.total_chapters
	if v == nil {
		return
	}
	return *v, true
}

// OldTotalChapters returns the old "total_chapters" field's value of the Course entity.
// If the Course object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CourseMutation) OldTotalChapters(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTotalChapters is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTotalChapters requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTotalChapters: %w", err)
	}
	return oldValue.TotalChapters, nil
}

// AddTotalChapters adds i to the "total_chapters" field.
func (m *CourseMutation) AddTotalChapters(i int) {
	if m.addtotal_chapters != nil {
		*m.addtotal_chapters += i
	} else {
		m.addtotal_chapters = &i
	}
}

// AddedTotalChapters returns the value that was added to the "total_chapters" field in this mutation.
func (m *CourseMutation) AddedTotalChapters() (r int, exists bool) {
	v := m.addtotal_chapters
	if v == nil {
		return
	}
	return *v, true
}

// ResetTotalChapters resets all changes to the "total_chapters" field.
func (m *CourseMutation) ResetTotalChapters() {
	m.total_chapters = nil
	m.addtotal_chapters = nil
}

// SetEstimatedStudyHours sets the "estimated_study_hours" field.
func (m *CourseMutation) SetEstimatedStudyHours(i int) {
	m.estimated_study_hours = &i
	m.addestimated_study_hours = nil
}

// EstimatedStudyHours returns the value of the "estimated_study_hours" field in the mutation.
func (m *CourseMutation) EstimatedStudyHours() (r int, exists bool) {
	v := m.estimated_study_hours
	if v == nil {
		return
	}
	return *v, true
}

// OldEstimatedStudyHours returns the old "estimated_study_hours" field's value of the Course entity.
// If the Course object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CourseMutation) OldEstimatedStudyHours(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEstimatedStudyHours is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEstimatedStudyHours requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEstimatedStudyHours: %w", err)
	}
	return oldValue.EstimatedStudyHours, nil
}

// AddEstimatedStudyHours adds i to the "estimated_study_hours" field.
func (m *CourseMutation) AddEstimatedStudyHours(i int) {
	if m.addestimated_study_hours != nil {
		*m.addestimated_study_hours += i
	} else {
		m.addestimated_study_hours = &i
	}
}

// AddedEstimatedStudyHours returns the value that was added to the "estimated_study_hours" field in this mutation.
func (m *CourseMutation) AddedEstimatedStudyHours() (r int, exists bool) {
	v := m.addestimated_study_hours
	if v == nil {
		return
	}
	return *v, true
}

// ResetEstimatedStudyHours resets all changes to the "estimated_study_hours" field.
func (m *CourseMutation) ResetEstimatedStudyHours() {
	m.estimated_study_hours = nil
	m.addestimated_study_hours = nil
}

// AddSubjectIDs adds the "subjects" edge to the Subject entity by ids.
func (m *CourseMutation) AddSubjectIDs(ids ...int) {
	if m.subjects == nil {
		m.subjects = make(map[int]struct{})
	}
	for i := range ids {
		m.subjects[ids[i]] = struct{}{}
	}
}

// ClearSubjects clears the "subjects" edge to the Subject entity.
func (m *CourseMutation) ClearSubjects() {
	m.clearedsubjects = true
}

// SubjectsCleared reports if the "subjects" edge to the Subject entity was cleared.
func (m *CourseMutation) SubjectsCleared() bool {
	return m.clearedsubjects
}

// RemoveSubjectIDs removes the "subjects" edge to the Subject entity by IDs.
func (m *CourseMutation) RemoveSubjectIDs(ids ...int) {
	if m.removedsubjects == nil {
		m.removedsubjects = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.subjects, ids[i])
		m.removedsubjects[ids[i]] = struct{}{}
	}
}

// RemovedSubjects returns the removed IDs of the "subjects" edge to the Subject entity.
func (m *CourseMutation) RemovedSubjectsIDs() (ids []int) {
	for id := range m.removedsubjects {
		ids = append(ids, id)
	}
	return
}

// SubjectsIDs returns the "subjects" edge IDs in the mutation.
func (m *CourseMutation) SubjectsIDs() (ids []int) {
	for id := range m.subjects {
		ids = append(ids, id)
	}
	return
}

// ResetSubjects resets all changes to the "subjects" edge.
func (m *CourseMutation) ResetSubjects() {
	m.subjects = nil
	m.clearedsubjects = false
	m.removedsubjects = nil
}

// AddEnrollmentIDs adds the "enrollments" edge to the CourseEnrollment entity by ids.
func (m *CourseMutation) AddEnrollmentIDs(ids ...int) {
	if m.enrollments == nil {
		m.enrollments = make(map[int]struct{})
	}
	for i := range ids {
		m.enrollments[ids[i]] = struct{}{}
	}
}

// ClearEnrollments clears the "enrollments" edge to the CourseEnrollment entity.
func (m *CourseMutation) ClearEnrollments() {
	m.clearedenrollments = true
}

// EnrollmentsCleared reports if the "enrollments" edge to the CourseEnrollment entity was cleared.
func (m *CourseMutation) EnrollmentsCleared() bool {
	return m.clearedenrollments
}

// RemoveEnrollmentIDs removes the "enrollments" edge to the CourseEnrollment entity by IDs.
func (m *CourseMutation) RemoveEnrollmentIDs(ids ...int) {
	if m.removedenrollments == nil {
		m.removedenrollments = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.enrollments, ids[i])
		m.removedenrollments[ids[i]] = struct{}{}
	}
}

// RemovedEnrollments returns the removed IDs of the "enrollments" edge to the CourseEnrollment entity.
func (m *CourseMutation) RemovedEnrollmentsIDs() (ids []int) {
	for id := range m.removedenrollments {
		ids = append(ids, id)
	}
	return
}

// EnrollmentsIDs returns the "enrollments" edge IDs in the mutation.
func (m *CourseMutation) EnrollmentsIDs() (ids []int) {
	for id := range m.enrollments {
		ids = append(ids, id)
	}
	return
}

// ResetEnrollments resets all changes to the "enrollments" edge.
func (m *CourseMutation) ResetEnrollments() {
	m.enrollments = nil
	m.clearedenrollments = false
	m.removedenrollments = nil
}

// AddStudySessionIDs adds the "study_sessions" edge to the StudySession entity by ids.
func (m *CourseMutation) AddStudySessionIDs(ids ...int) {
	if m.study_sessions == nil {
		m.study_sessions = make(map[int]struct{})
	}
	for i := range ids {
		m.study_sessions[ids[i]] = struct{}{}
	}
}

// ClearStudySessions clears the "study_sessions" edge to the StudySession entity.
func (m *CourseMutation) ClearStudySessions() {
	m.clearedstudy_sessions = true
}

// StudySessionsCleared reports if the "study_sessions" edge to the StudySession entity was cleared.
func (m *CourseMutation) StudySessionsCleared() bool {
	return m.clearedstudy_sessions
}

// RemoveStudySessionIDs removes the "study_sessions" edge to the StudySession entity by IDs.
func (m *CourseMutation) RemoveStudySessionIDs(ids ...int) {
	if m.removedstudy_sessions == nil {
		m.removedstudy_sessions = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.study_sessions, ids[i])
		m.removedstudy_sessions[ids[i]] = struct{}{}
	}
}

// RemovedStudySessions returns the removed IDs of the "study_sessions" edge to the StudySession entity.
func (m *CourseMutation) RemovedStudySessionsIDs() (ids []int) {
	for id := range m.removedstudy_sessions {
		ids = append(ids, id)
	}
	return
}

// StudySessionsIDs returns the "study_sessions" edge IDs in the mutation.
func (m *CourseMutation) StudySessionsIDs() (ids []int) {
	for id := range m.study_sessions {
		ids = append(ids, id)
	}
	return
}

// ResetStudySessions resets all changes to the "study_sessions" edge.
func (m *CourseMutation) ResetStudySessions() {
	m.study_sessions = nil
	m.clearedstudy_sessions = false
	m.removedstudy_sessions = nil
}

// Where appends a list predicates to the CourseMutation builder.
func (m *CourseMutation) Where(ps ...predicate.Course) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the CourseMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *CourseMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Course, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *CourseMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *CourseMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Course).
func (m *CourseMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *CourseMutation) Fields() []string {
	fields := make([]string, 0, 11)
	if m.created_at != nil {
		fields = append(fields, course.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, course.FieldUpdatedAt)
	}
	if m.name != nil {
		fields = append(fields, course.FieldName)
	}
	if m.description != nil {
		fields = append(fields, course.FieldDescription)
	}
	if m.academic_level != nil {
		fields = append(fields, course.FieldAcademicLevel)
	}
	if m.institution != nil {
		fields = append(fields, course.FieldInstitution)
	}
	if m.instructor != nil {
		fields = append(fields, course.FieldInstructor)
	}
	if m.semester != nil {
		fields = append(fields, course.FieldSemester)
	}
	if m.total_subjects != nil {
		fields = append(fields, course.FieldTotalSubjects)
	}
	if m.total_chapters != nil {
		fields = append(fields, course.FieldTotalChapters)
	}
	if m.estimated_study_hours != nil {
		fields = append(fields, course.FieldEstimatedStudyHours)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *CourseMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case course.FieldCreatedAt:
		return m.CreatedAt()
	case course.FieldUpdatedAt:
		return m.UpdatedAt()
	case course.FieldName:
		return m.Name()
	case course.FieldDescription:
		return m.Description()
	case course.FieldAcademicLevel:
		return m.AcademicLevel()
	case course.FieldInstitution:
		return m.Institution()
	case course.FieldInstructor:
		return m.Instructor()
	case course.FieldSemester:
		return m.Semester()
	case course.FieldTotalSubjects:
		return m.TotalSubjects()
	case course.FieldTotalChapters:
		return m.TotalChapters()
	case course.FieldEstimatedStudyHours:
		return m.EstimatedStudyHours()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *CourseMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case course.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case course.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case course.FieldName:
		return m.OldName(ctx)
	case course.FieldDescription:
		return m.OldDescription(ctx)
	case course.FieldAcademicLevel:
		return m.OldAcademicLevel(ctx)
	case course.FieldInstitution:
		return m.OldInstitution(ctx)
	case course.FieldInstructor:
		return m.OldInstructor(ctx)
	case course.FieldSemester:
		return m.OldSemester(ctx)
	case course.FieldTotalSubjects:
		return m.OldTotalSubjects(ctx)
	case course.FieldTotalChapters:
		return m.OldTotalChapters(ctx)
	case course.FieldEstimatedStudyHours:
		return m.OldEstimatedStudyHours(ctx)
	}
	return nil, fmt.Errorf("unknown Course field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CourseMutation) SetField(name string, value ent.Value) error {
	switch name {
	case course.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case course.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case course.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case course.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	case course.FieldAcademicLevel:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAcademicLevel(v)
		return nil
	case course.FieldInstitution:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInstitution(v)
		return nil
	case course.FieldInstructor:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInstructor(v)
		return nil
	case course.FieldSemester:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSemester(v)
		return nil
	case course.FieldTotalSubjects:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTotalSubjects(v)
		return nil
	case course.FieldTotalChapters:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTotalChapters(v)
		return nil
	case course.FieldEstimatedStudyHours:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEstimatedStudyHours(v)
		return nil
	}
	return fmt.Errorf("unknown Course field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *CourseMutation) AddedFields() []string {
	var fields []string
	if m.addtotal_subjects != nil {
		fields = append(fields, course.FieldTotalSubjects)
	}
	if m.addtotal_chapters != nil {
		fields = append(fields, course.FieldTotalChapters)
	}
	if m.addestimated_study_hours != nil {
		fields = append(fields, course.FieldEstimatedStudyHours)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *CourseMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case course.FieldTotalSubjects:
		return m.AddedTotalSubjects()
	case course.FieldTotalChapters:
		return m.AddedTotalChapters()
	case course.FieldEstimatedStudyHours:
		return m.AddedEstimatedStudyHours()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CourseMutation) AddField(name string, value ent.Value) error {
	switch name {
	case course.FieldTotalSubjects:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTotalSubjects(v)
		return nil
	case course.FieldTotalChapters:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTotalChapters(v)
		return nil
	case course.FieldEstimatedStudyHours:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddEstimatedStudyHours(v)
		return nil
	}
	return fmt.Errorf("unknown Course numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *CourseMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(course.FieldDescription) {
		fields = append(fields, course.FieldDescription)
	}
	if m.FieldCleared(course.FieldInstitution) {
		fields = append(fields, course.FieldInstitution)
	}
	if m.FieldCleared(course.FieldInstructor) {
		fields = append(fields, course.FieldInstructor)
	}
	if m.FieldCleared(course.FieldSemester) {
		fields = append(fields, course.FieldSemester)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *CourseMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *CourseMutation) ClearField(name string) error {
	switch name {
	case course.FieldDescription:
		m.ClearDescription()
		return nil
	case course.FieldInstitution:
		m.ClearInstitution()
		return nil
	case course.FieldInstructor:
		m.ClearInstructor()
		return nil
	case course.FieldSemester:
		m.ClearSemester()
		return nil
	}
	return fmt.Errorf("unknown Course nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *CourseMutation) ResetField(name string) error {
	switch name {
	case course.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case course.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case course.FieldName:
		m.ResetName()
		return nil
	case course.FieldDescription:
		m.ResetDescription()
		return nil
	case course.FieldAcademicLevel:
		m.ResetAcademicLevel()
		return nil
	case course.FieldInstitution:
		m.ResetInstitution()
		return nil
	case course.FieldInstructor:
		m.ResetInstructor()
		return nil
	case course.FieldSemester:
		m.ResetSemester()
		return nil
	case course.FieldTotalSubjects:
		m.ResetTotalSubjects()
		return nil
	case course.FieldTotalChapters:
		m.ResetTotalChapters()
		return nil
	case course.FieldEstimatedStudyHours:
		m.ResetEstimatedStudyHours()
		return nil
	}
	return fmt.Errorf("unknown Course field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *CourseMutation) AddedEdges() []string {
	edges := make([]string, 0, 3)
	if m.subjects != nil {
		edges = append(edges, course.EdgeSubjects)
	}
	if m.enrollments != nil {
		edges = append(edges, course.EdgeEnrollments)
	}
	if m.study_sessions != nil {
		edges = append(edges, course.EdgeStudySessions)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *CourseMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case course.EdgeSubjects:
		ids := make([]ent.Value, 0, len(m.subjects))
		for id := range m.subjects {
			ids = append(ids, id)
		}
		return ids
	case course.EdgeEnrollments:
		ids := make([]ent.Value, 0, len(m.enrollments))
		for id := range m.enrollments {
			ids = append(ids, id)
		}
		return ids
	case course.EdgeStudySessions:
		ids := make([]ent.Value, 0, len(m.study_sessions))
		for id := range m.study_sessions {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *CourseMutation) RemovedEdges() []string {
	edges := make([]string, 0, 3)
	if m.removedsubjects != nil {
		edges = append(edges, course.EdgeSubjects)
	}
	if m.removedenrollments != nil {
		edges = append(edges, course.EdgeEnrollments)
	}
	if m.removedstudy_sessions != nil {
		edges = append(edges, course.EdgeStudySessions)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *CourseMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case course.EdgeSubjects:
		ids := make([]ent.Value, 0, len(m.removedsubjects))
		for id := range m.removedsubjects {
			ids = append(ids, id)
		}
		return ids
	case course.EdgeEnrollments:
		ids := make([]ent.Value, 0, len(m.removedenrollments))
		for id := range m.removedenrollments {
			ids = append(ids, id)
		}
		return ids
	case course.EdgeStudySessions:
		ids := make([]ent.Value, 0, len(m.removedstudy_sessions))
		for id := range m.removedstudy_sessions {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *CourseMutation) ClearedEdges() []string {
	edges := make([]string, 0, 3)
	if m.clearedsubjects {
		edges = append(edges, course.EdgeSubjects)
	}
	if m.clearedenrollments {
		edges = append(edges, course.EdgeEnrollments)
	}
	if m.clearedstudy_sessions {
		edges = append(edges, course.EdgeStudySessions)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *CourseMutation) EdgeCleared(name string) bool {
	switch name {
	case course.EdgeSubjects:
		return m.clearedsubjects
	case course.EdgeEnrollments:
		return m.clearedenrollments
	case course.EdgeStudySessions:
		return m.clearedstudy_sessions
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *CourseMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Course unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *CourseMutation) ResetEdge(name string) error {
	switch name {
	case course.EdgeSubjects:
		m.ResetSubjects()
		return nil
	case course.EdgeEnrollments:
		m.ResetEnrollments()
		return nil
	case course.EdgeStudySessions:
		m.ResetStudySessions()
		return nil
	}
	return fmt.Errorf("unknown Course edge %s", name)
}

// CourseEnrollmentMutation represents an operation that mutates the CourseEnrollment nodes in the graph.
type CourseEnrollmentMutation struct {
	config
	op                             Op
	typ                            string
	id                             *int
	user_id                        *string
	enrollment_date                *time.Time
	target_completion_date         *time.Time
	study_goal_hours_per_week      *int
	addstudy_goal_hours_per_week   *int
	overall_progress_percentage    *float64
	addoverall_progress_percentage *float64
	subjects_completed             *int
	addsubjects_completed          *int
	chapters_completed             *int
	addchapters_completed          *int
	total_study_time_minutes       *int
	addtotal_study_time_minutes    *int
	preferred_difficulty           *string
	learning_style_preference      *string
	last_activity                  *time.Time
	completed_at                   *time.Time
	clearedFields                  map[string]struct{}
	course                         *int
	clearedcourse                  bool
	done                           bool
	oldValue                       func(context.Context) (*CourseEnrollment, error)
	predicates                     []predicate.CourseEnrollment
}

var _ ent.Mutation = (*CourseEnrollmentMutation)(nil)

// courseenrollmentOption allows management of the mutation configuration using functional options.
type courseenrollmentOption func(*CourseEnrollmentMutation)

// newCourseEnrollmentMutation creates new mutation for the CourseEnrollment entity.
func newCourseEnrollmentMutation(c config, op Op, opts ...courseenrollmentOption) *CourseEnrollmentMutation {
	m := &CourseEnrollmentMutation{
		config:        c,
		op:            op,
		typ:           TypeCourseEnrollment,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withCourseEnrollmentID sets the ID field of the mutation.
func withCourseEnrollmentID(id int) courseenrollmentOption {
	return func(m *CourseEnrollmentMutation) {
		var (
			err   error
			once  sync.Once
			value *CourseEnrollment
		)
		m.oldValue = func(ctx context.Context) (*CourseEnrollment, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().CourseEnrollment.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withCourseEnrollment sets the old CourseEnrollment of the mutation.
func withCourseEnrollment(node *CourseEnrollment) courseenrollmentOption {
	return func(m *CourseEnrollmentMutation) {
		m.oldValue = func(context.Context) (*CourseEnrollment, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m CourseEnrollmentMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m CourseEnrollmentMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *CourseEnrollmentMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *CourseEnrollmentMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().CourseEnrollment.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetUserID sets the "user_id" field.
func (m *CourseEnrollmentMutation) SetUserID(s string) {
	m.user_id = &s
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *CourseEnrollmentMutation) UserID() (r string, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the CourseEnrollment entity.
// If the CourseEnrollment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CourseEnrollmentMutation) OldUserID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *CourseEnrollmentMutation) ResetUserID() {
	m.user_id = nil
}

// SetEnrollmentDate sets the "enrollment_date" field.
func (m *CourseEnrollmentMutation) SetEnrollmentDate(t time.Time) {
	m.enrollment_date = &t
}

// EnrollmentDate returns the value of the "enrollment_date" field in the mutation.
func (m *CourseEnrollmentMutation) EnrollmentDate() (r time.Time, exists bool) {
	v := m.enrollment_date
	if v == nil {
		return
	}
	return *v, true
}

// OldEnrollmentDate returns the old "enrollment_date" field's value of the CourseEnrollment entity.
// If the CourseEnrollment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CourseEnrollmentMutation) OldEnrollmentDate(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEnrollmentDate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEnrollmentDate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEnrollmentDate: %w", err)
	}
	return oldValue.EnrollmentDate, nil
}

// ResetEnrollmentDate resets all changes to the "enrollment_date" field.
func (m *CourseEnrollmentMutation) ResetEnrollmentDate() {
	m.enrollment_date = nil
}

// SetTargetCompletionDate sets the "target_completion_date" field.
func (m *CourseEnrollmentMutation) SetTargetCompletionDate(t time.Time) {
	m.target_completion_date = &t
}

// TargetCompletionDate returns the value of the "target_completion_date" field in the mutation.
func (m *CourseEnrollmentMutation) TargetCompletionDate() (r time.Time, exists bool) {
	v := m.target_completion_date
	if v == nil {
		return
	}
	return *v, true
}

// OldTargetCompletionDate returns the old "target_completion_date" field's value of the CourseEnrollment entity.
// If the CourseEnrollment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CourseEnrollmentMutation) OldTargetCompletionDate(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTargetCompletionDate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTargetCompletionDate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTargetCompletionDate: %w", err)
	}
	return oldValue.TargetCompletionDate, nil
}

// ClearTargetCompletionDate clears the value of the "target_completion_date" field.
func (m *CourseEnrollmentMutation) ClearTargetCompletionDate() {
	m.target_completion_date = nil
	m.clearedFields[courseenrollment.FieldTargetCompletionDate] = struct{}{}
}

// TargetCompletionDateCleared returns if the "target_completion_date" field was cleared in this mutation.
func (m *CourseEnrollmentMutation) TargetCompletionDateCleared() bool {
	_, ok := m.clearedFields[courseenrollment.FieldTargetCompletionDate]
	return ok
}

// ResetTargetCompletionDate resets all changes to the "target_completion_date" field.
func (m *CourseEnrollmentMutation) ResetTargetCompletionDate() {
	m.target_completion_date = nil
	delete(m.clearedFields, courseenrollment.FieldTargetCompletionDate)
}

// SetStudyGoalHoursPerWeek sets the "study_goal_hours_per_week" field.
func (m *CourseEnrollmentMutation) SetStudyGoalHoursPerWeek(i int) {
	m.study_goal_hours_per_week = &i
	m.addstudy_goal_hours_per_week = nil
}

// StudyGoalHoursPerWeek returns the value of the "study_goal_hours_per_week" field in the mutation.
func (m *CourseEnrollmentMutation) StudyGoalHoursPerWeek() (r int, exists bool) {
	v := m.study_goal_hours_per_week
	if v == nil {
		return
	}
	return *v, true
}

// OldStudyGoalHoursPerWeek returns the old "study_goal_hours_per_week" field's value of the CourseEnrollment entity.
// If the CourseEnrollment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CourseEnrollmentMutation) OldStudyGoalHoursPerWeek(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStudyGoalHoursPerWeek is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStudyGoalHoursPerWeek requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStudyGoalHoursPerWeek: %w", err)
	}
	return oldValue.StudyGoalHoursPerWeek, nil
}

// AddStudyGoalHoursPerWeek adds i to the "study_goal_hours_per_week" field.
func (m *CourseEnrollmentMutation) AddStudyGoalHoursPerWeek(i int) {
	if m.addstudy_goal_hours_per_week != nil {
		*m.addstudy_goal_hours_per_week += i
	} else {
		m.addstudy_goal_hours_per_week = &i
	}
}

// AddedStudyGoalHoursPerWeek returns the value that was added to the "study_goal_hours_per_week" field in this mutation.
func (m *CourseEnrollmentMutation) AddedStudyGoalHoursPerWeek() (r int, exists bool) {
	v := m.addstudy_goal_hours_per_week
	if v == nil {
		return
	}
	return *v, true
}

// ResetStudyGoalHoursPerWeek resets all changes to the "study_goal_hours_per_week" field.
func (m *CourseEnrollmentMutation) ResetStudyGoalHoursPerWeek() {
	m.study_goal_hours_per_week = nil
	m.addstudy_goal_hours_per_week = nil
}

// SetOverallProgressPercentage sets the "overall_progress_percentage" field.
func (m *CourseEnrollmentMutation) SetOverallProgressPercentage(f float64) {
	m.overall_progress_percentage = &f
	m.addoverall_progress_percentage = nil
}

// OverallProgressPercentage returns the value of the "overall_progress_percentage" field in the mutation.
func (m *CourseEnrollmentMutation) OverallProgressPercentage() (r float64, exists bool) {
	v := m.overall_progress_percentage
	if v == nil {
		return
	}
	return *v, true
}

// OldOverallProgressPercentage returns the old "overall_progress_percentage" field's value of the CourseEnrollment entity.
// If the CourseEnrollment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CourseEnrollmentMutation) OldOverallProgressPercentage(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOverallProgressPercentage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOverallProgressPercentage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOverallProgressPercentage: %w", err)
	}
	return oldValue.OverallProgressPercentage, nil
}

// AddOverallProgressPercentage adds f to the "overall_progress_percentage" field.
func (m *CourseEnrollmentMutation) AddOverallProgressPercentage(f float64) {
	if m.addoverall_progress_percentage != nil {
		*m.addoverall_progress_percentage += f
	} else {
		m.addoverall_progress_percentage = &f
	}
}

// AddedOverallProgressPercentage returns the value that was added to the "overall_progress_percentage" field in this mutation.
func (m *CourseEnrollmentMutation) AddedOverallProgressPercentage() (r float64, exists bool) {
	v := m.addoverall_progress_percentage
	if v == nil {
		return
	}
	return *v, true
}

// ResetOverallProgressPercentage resets all changes to the "overall_progress_percentage" field.
func (m *CourseEnrollmentMutation) ResetOverallProgressPercentage() {
	m.overall_progress_percentage = nil
	m.addoverall_progress_percentage = nil
}

// SetSubjectsCompleted sets the "subjects_completed" field.
func (m *CourseEnrollmentMutation) SetSubjectsCompleted(i int) {
	m.subjects_completed = &i
	m.addsubjects_completed = nil
}

// SubjectsCompleted returns the value of the "subjects_completed" field in the mutation.
func (m *CourseEnrollmentMutation) SubjectsCompleted() (r int, exists bool) {
	v := m.subjects_completed
	if v == nil {
		return
	}
	return *v, true
}

// OldSubjectsCompleted returns the old "subjects_completed" field's value of the CourseEnrollment entity.
// If the CourseEnrollment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CourseEnrollmentMutation) OldSubjectsCompleted(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSubjectsCompleted is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSubjectsCompleted requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSubjectsCompleted: %w", err)
	}
	return oldValue.SubjectsCompleted, nil
}

// AddSubjectsCompleted adds i to the "subjects_completed" field.
func (m *CourseEnrollmentMutation) AddSubjectsCompleted(i int) {
	if m.addsubjects_completed != nil {
		*m.addsubjects_completed += i
	} else {
		m.addsubjects_completed = &i
	}
}

// AddedSubjectsCompleted returns the value that was added to the "subjects_completed" field in this mutation.
func (m *CourseEnrollmentMutation) AddedSubjectsCompleted() (r int, exists bool) {
	v := m.addsubjects_completed
	if v == nil {
		return
	}
	return *v, true
}

// ResetSubjectsCompleted resets all changes to the "subjects_completed" field.
func (m *CourseEnrollmentMutation) ResetSubjectsCompleted() {
	m.subjects_completed = nil
	m.addsubjects_completed = nil
}

// SetChaptersCompleted sets the "chapters_completed" field.
func (m *CourseEnrollmentMutation) SetChaptersCompleted(i int) {
	m.chapters_completed = &i
	m.addchapters_completed = nil
}

// ChaptersCompleted returns the value of the "chapters_completed" field in the mutation.
func (m *CourseEnrollmentMutation) ChaptersCompleted() (r int, exists bool) {
	v := m.chapters_completed
	if v == nil {
		return
	}
	return *v, true
}

// OldChaptersCompleted returns the old "chapters_completed" field's value of the CourseEnrollment entity.
// If the CourseEnrollment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CourseEnrollmentMutation) OldChaptersCompleted(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldChaptersCompleted is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldChaptersCompleted requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldChaptersCompleted: %w", err)
	}
	return oldValue.ChaptersCompleted, nil
}

// AddChaptersCompleted adds i to the "chapters_completed" field.
func (m *CourseEnrollmentMutation) AddChaptersCompleted(i int) {
	if m.addchapters_completed != nil {
		*m.addchapters_completed += i
	} else {
		m.addchapters_completed = &i
	}
}

// AddedChaptersCompleted returns the value that was added to the "chapters_completed" field in this mutation.
func (m *CourseEnrollmentMutation) AddedChaptersCompleted() (r int, exists bool) {
	v := m.addchapters_completed
	if v == nil {
		return
	}
	return *v, true
}

// ResetChaptersCompleted resets all changes to the "chapters_completed" field.
func (m *CourseEnrollmentMutation) ResetChaptersCompleted() {
	m.chapters_completed = nil
	m.addchapters_completed = nil
}

// SetTotalStudyTimeMinutes sets the "total_study_time_minutes" field.
func (m *CourseEnrollmentMutation) SetTotalStudyTimeMinutes(i int) {
	m.total_study_time_minutes = &i
	m.addtotal_study_time_minutes = nil
}

// TotalStudyTimeMinutes returns the value of the "total_study_time_minutes" field in the mutation.
func (m *CourseEnrollmentMutation) TotalStudyTimeMinutes() (r int, exists bool) {
	v := m.total_study_time_minutes
	if v == nil {
		return
	}
	return *v, true
}

// OldTotalStudyTimeMinutes returns the old "total_study_time_minutes" field's value of the CourseEnrollment entity.
// If the CourseEnrollment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CourseEnrollmentMutation) OldTotalStudyTimeMinutes(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTotalStudyTimeMinutes is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTotalStudyTimeMinutes requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTotalStudyTimeMinutes: %w", err)
	}
	return oldValue.TotalStudyTimeMinutes, nil
}

// AddTotalStudyTimeMinutes adds i to the "total_study_time_minutes" field.
func (m *CourseEnrollmentMutation) AddTotalStudyTimeMinutes(i int) {
	if m.addtotal_study_time_minutes != nil {
		*m.addtotal_study_time_minutes += i
	} else {
		m.addtotal_study_time_minutes = &i
	}
}

// AddedTotalStudyTimeMinutes returns the value that was added to the "total_study_time_minutes" field in this mutation.
func (m *CourseEnrollmentMutation) AddedTotalStudyTimeMinutes() (r int, exists bool) {
	v := m.addtotal_study_time_minutes
	if v == nil {
		return
	}
	return *v, true
}

// ResetTotalStudyTimeMinutes resets all changes to the "total_study_time_minutes" field.
func (m *CourseEnrollmentMutation) ResetTotalStudyTimeMinutes() {
	m.total_study_time_minutes = nil
	m.addtotal_study_time_minutes = nil
}

// SetPreferredDifficulty sets the "preferred_difficulty" field.
func (m *CourseEnrollmentMutation) SetPreferredDifficulty(s string) {
	m.preferred_difficulty = &s
}

// PreferredDifficulty returns the value of the "preferred_difficulty" field in the mutation.
func (m *CourseEnrollmentMutation) PreferredDifficulty() (r string, exists bool) {
	v := m.preferred_difficulty
	if v == nil {
		return
	}
	return *v, true
}

// OldPreferredDifficulty returns the old "preferred_difficulty" field's value of the CourseEnrollment entity.
// If the CourseEnrollment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CourseEnrollmentMutation) OldPreferredDifficulty(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPreferredDifficulty is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPreferredDifficulty requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPreferredDifficulty: %w", err)
	}
	return oldValue.PreferredDifficulty, nil
}

// ResetPreferredDifficulty resets all changes to the "preferred_difficulty" field.
func (m *CourseEnrollmentMutation) ResetPreferredDifficulty() {
	m.preferred_difficulty = nil
}

// SetLearningStylePreference sets the "learning_style_preference" field.
func (m *CourseEnrollmentMutation) SetLearningStylePreference(s string) {
	m.learning_style_preference = &s
}

// LearningStylePreference returns the value of the "learning_style_preference" field in the mutation.
func (m *CourseEnrollmentMutation) LearningStylePreference() (r string, exists bool) {
	v := m.learning_style_preference
	if v == nil {
		return
	}
	return *v, true
}

// OldLearningStylePreference returns the old "learning_style_preference" field's value of the CourseEnrollment entity.
// If the CourseEnrollment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CourseEnrollmentMutation) OldLearningStylePreference(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLearningStylePreference is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLearningStylePreference requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLearningStylePreference: %w", err)
	}
	return oldValue.LearningStylePreference, nil
}

// ResetLearningStylePreference resets all changes to the "learning_style_preference" field.
func (m *CourseEnrollmentMutation) ResetLearningStylePreference() {
	m.learning_style_preference = nil
}

// SetLastActivity sets the "last_activity" field.
func (m *CourseEnrollmentMutation) SetLastActivity(t time.Time) {
	m.last_activity = &t
}

// LastActivity returns the value of the "last_activity" field in the mutation.
func (m *CourseEnrollmentMutation) LastActivity() (r time.Time, exists bool) {
	v := m.last_activity
	if v == nil {
		return
	}
	return *v, true
}

// OldLastActivity returns the old "last_activity" field's value of the CourseEnrollment entity.
// If the CourseEnrollment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CourseEnrollmentMutation) OldLastActivity(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastActivity is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastActivity requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastActivity: %w", err)
	}
	return oldValue.LastActivity, nil
}

// ResetLastActivity resets all changes to the "last_activity" field.
func (m *CourseEnrollmentMutation) ResetLastActivity() {
	m.last_activity = nil
}

// SetCompletedAt sets the "completed_at" field.
func (m *CourseEnrollmentMutation) SetCompletedAt(t time.Time) {
	m.completed_at = &t
}

// CompletedAt returns the value of the "completed_at" field in the mutation.
func (m *CourseEnrollmentMutation) CompletedAt() (r time.Time, exists bool) {
	v := m.completed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedAt returns the old "completed_at" field's value of the CourseEnrollment entity.
// If the CourseEnrollment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CourseEnrollmentMutation) OldCompletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletedAt: %w", err)
	}
	return oldValue.CompletedAt, nil
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (m *CourseEnrollmentMutation) ClearCompletedAt() {
	m.completed_at = nil
	m.clearedFields[courseenrollment.FieldCompletedAt] = struct{}{}
}

// CompletedAtCleared returns if the "completed_at" field was cleared in this mutation.
func (m *CourseEnrollmentMutation) CompletedAtCleared() bool {
	_, ok := m.clearedFields[courseenrollment.FieldCompletedAt]
	return ok
}

// ResetCompletedAt resets all changes to the "completed_at" field.
func (m *CourseEnrollmentMutation) ResetCompletedAt() {
	m.completed_at = nil
	delete(m.clearedFields, courseenrollment.FieldCompletedAt)
}

// SetCourseID sets the "course_id" field.
func (m *CourseEnrollmentMutation) SetCourseID(i int) {
	m.course = &i
}

// CourseID returns the value of the "course_id" field in the mutation.
func (m *CourseEnrollmentMutation) CourseID() (r int, exists bool) {
	v := m.course
	if v == nil {
		return
	}
	return *v, true
}

// OldCourseID returns the old "course_id" field's value of the CourseEnrollment entity.
// If the CourseEnrollment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CourseEnrollmentMutation) OldCourseID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCourseID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCourseID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCourseID: %w", err)
	}
	return oldValue.CourseID, nil
}

// ResetCourseID resets all changes to the "course_id" field.
func (m *CourseEnrollmentMutation) ResetCourseID() {
	m.course = nil
}

// ClearCourse clears the "course" edge to the Course entity.
func (m *CourseEnrollmentMutation) ClearCourse() {
	m.clearedcourse = true
	m.clearedFields[courseenrollment.FieldCourseID] = struct{}{}
}

// CourseCleared reports if the "course" edge to the Course entity was cleared.
func (m *CourseEnrollmentMutation) CourseCleared() bool {
	return m.clearedcourse
}

// CourseIDs returns the "course" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// CourseID instead. It exists only for internal usage by the builders.
func (m *CourseEnrollmentMutation) CourseIDs() (ids []int) {
	if id := m.course; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetCourse resets all changes to the "course" edge.
func (m *CourseEnrollmentMutation) ResetCourse() {
	m.course = nil
	m.clearedcourse = false
}

// Where appends a list predicates to the CourseEnrollmentMutation builder.
func (m *CourseEnrollmentMutation) Where(ps ...predicate.CourseEnrollment) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the CourseEnrollmentMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *CourseEnrollmentMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.CourseEnrollment, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *CourseEnrollmentMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *CourseEnrollmentMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (CourseEnrollment).
func (m *CourseEnrollmentMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *CourseEnrollmentMutation) Fields() []string {
	fields := make([]string, 0, 13)
	if m.user_id != nil {
		fields = append(fields, courseenrollment.FieldUserID)
	}
	if m.enrollment_date != nil {
		fields = append(fields, courseenrollment.FieldEnrollmentDate)
	}
	if m.target_completion_date != nil {
		fields = append(fields, courseenrollment.FieldTargetCompletionDate)
	}
	if m.study_goal_hours_per_week != nil {
		fields = append(fields, courseenrollment.FieldStudyGoalHoursPerWeek)
	}
	if m.overall_progress_percentage != nil {
		fields = append(fields, courseenrollment.FieldOverallProgressPercentage)
	}
	if m.subjects_completed != nil {
		fields = append(fields, courseenrollment.FieldSubjectsCompleted)
	}
	if m.chapters_completed != nil {
		fields = append(fields, courseenrollment.FieldChaptersCompleted)
	}
	if m.total_study_time_minutes != nil {
		fields = append(fields, courseenrollment.FieldTotalStudyTimeMinutes)
	}
	if m.preferred_difficulty != nil {
		fields = append(fields, courseenrollment.FieldPreferredDifficulty)
	}
	if m.learning_style_preference != nil {
		fields = append(fields, courseenrollment.FieldLearningStylePreference)
	}
	if m.last_activity != nil {
		fields = append(fields, courseenrollment.FieldLastActivity)
	}
	if m.completed_at != nil {
		fields = append(fields, courseenrollment.FieldCompletedAt)
	}
	if m.course != nil {
		fields = append(fields, courseenrollment.FieldCourseID)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *CourseEnrollmentMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case courseenrollment.FieldUserID:
		return m.UserID()
	case courseenrollment.FieldEnrollmentDate:
		return m.EnrollmentDate()
	case courseenrollment.FieldTargetCompletionDate:
		return m.TargetCompletionDate()
	case courseenrollment.FieldStudyGoalHoursPerWeek:
		return m.StudyGoalHoursPerWeek()
	case courseenrollment.FieldOverallProgressPercentage:
		return m.OverallProgressPercentage()
	case courseenrollment.FieldSubjectsCompleted:
		return m.SubjectsCompleted()
	case courseenrollment.FieldChaptersCompleted:
		return m.ChaptersCompleted()
	case courseenrollment.FieldTotalStudyTimeMinutes:
		return m.TotalStudyTimeMinutes()
	case courseenrollment.FieldPreferredDifficulty:
		return m.PreferredDifficulty()
	case courseenrollment.FieldLearningStylePreference:
		return m.LearningStylePreference()
	case courseenrollment.FieldLastActivity:
		return m.LastActivity()
	case courseenrollment.FieldCompletedAt:
		return m.CompletedAt()
	case courseenrollment.FieldCourseID:
		return m.CourseID()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *CourseEnrollmentMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case courseenrollment.FieldUserID:
		return m.OldUserID(ctx)
	case courseenrollment.FieldEnrollmentDate:
		return m.OldEnrollmentDate(ctx)
	case courseenrollment.FieldTargetCompletionDate:
		return m.OldTargetCompletionDate(ctx)
	case courseenrollment.FieldStudyGoalHoursPerWeek:
		return m.OldStudyGoalHoursPerWeek(ctx)
	case courseenrollment.FieldOverallProgressPercentage:
		return m.OldOverallProgressPercentage(ctx)
	case courseenrollment.FieldSubjectsCompleted:
		return m.OldSubjectsCompleted(ctx)
	case courseenrollment.FieldChaptersCompleted:
		return m.OldChaptersCompleted(ctx)
	case courseenrollment.FieldTotalStudyTimeMinutes:
		return m.OldTotalStudyTimeMinutes(ctx)
	case courseenrollment.FieldPreferredDifficulty:
		return m.OldPreferredDifficulty(ctx)
	case courseenrollment.FieldLearningStylePreference:
		return m.OldLearningStylePreference(ctx)
	case courseenrollment.FieldLastActivity:
		return m.OldLastActivity(ctx)
	case courseenrollment.FieldCompletedAt:
		return m.OldCompletedAt(ctx)
	case courseenrollment.FieldCourseID:
		return m.OldCourseID(ctx)
	}
	return nil, fmt.Errorf("unknown CourseEnrollment field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CourseEnrollmentMutation) SetField(name string, value ent.Value) error {
	switch name {
	case courseenrollment.FieldUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case courseenrollment.FieldEnrollmentDate:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEnrollmentDate(v)
		return nil
	case courseenrollment.FieldTargetCompletionDate:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTargetCompletionDate(v)
		return nil
	case courseenrollment.FieldStudyGoalHoursPerWeek:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStudyGoalHoursPerWeek(v)
		return nil
	case courseenrollment.FieldOverallProgressPercentage:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOverallProgressPercentage(v)
		return nil
	case courseenrollment.FieldSubjectsCompleted:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSubjectsCompleted(v)
		return nil
	case courseenrollment.FieldChaptersCompleted:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetChaptersCompleted(v)
		return nil
	case courseenrollment.FieldTotalStudyTimeMinutes:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTotalStudyTimeMinutes(v)
		return nil
	case courseenrollment.FieldPreferredDifficulty:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPreferredDifficulty(v)
		return nil
	case courseenrollment.FieldLearningStylePreference:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLearningStylePreference(v)
		return nil
	case courseenrollment.FieldLastActivity:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastActivity(v)
		return nil
	case courseenrollment.FieldCompletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedAt(v)
		return nil
	case courseenrollment.FieldCourseID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCourseID(v)
		return nil
	}
	return fmt.Errorf("unknown CourseEnrollment field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *CourseEnrollmentMutation) AddedFields() []string {
	var fields []string
	if m.addstudy_goal_hours_per_week != nil {
		fields = append(fields, courseenrollment.FieldStudyGoalHoursPerWeek)
	}
	if m.addoverall_progress_percentage != nil {
		fields = append(fields, courseenrollment.FieldOverallProgressPercentage)
	}
	if m.addsubjects_completed != nil {
		fields = append(fields, courseenrollment.FieldSubjectsCompleted)
	}
	if m.addchapters_completed != nil {
		fields = append(fields, courseenrollment.FieldChaptersCompleted)
	}
	if m.addtotal_study_time_minutes != nil {
		fields = append(fields, courseenrollment.FieldTotalStudyTimeMinutes)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *CourseEnrollmentMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case courseenrollment.FieldStudyGoalHoursPerWeek:
		return m.AddedStudyGoalHoursPerWeek()
	case courseenrollment.FieldOverallProgressPercentage:
		return m.AddedOverallProgressPercentage()
	case courseenrollment.FieldSubjectsCompleted:
		return m.AddedSubjectsCompleted()
	case courseenrollment.FieldChaptersCompleted:
		return m.AddedChaptersCompleted()
	case courseenrollment.FieldTotalStudyTimeMinutes:
		return m.AddedTotalStudyTimeMinutes()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CourseEnrollmentMutation) AddField(name string, value ent.Value) error {
	switch name {
	case courseenrollment.FieldStudyGoalHoursPerWeek:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddStudyGoalHoursPerWeek(v)
		return nil
	case courseenrollment.FieldOverallProgressPercentage:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddOverallProgressPercentage(v)
		return nil
	case courseenrollment.FieldSubjectsCompleted:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSubjectsCompleted(v)
		return nil
	case courseenrollment.FieldChaptersCompleted:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddChaptersCompleted(v)
		return nil
	case courseenrollment.FieldTotalStudyTimeMinutes:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTotalStudyTimeMinutes(v)
		return nil
	}
	return fmt.Errorf("unknown CourseEnrollment numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *CourseEnrollmentMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(courseenrollment.FieldTargetCompletionDate) {
		fields = append(fields, courseenrollment.FieldTargetCompletionDate)
	}
	if m.FieldCleared(courseenrollment.FieldCompletedAt) {
		fields = append(fields, courseenrollment.FieldCompletedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *CourseEnrollmentMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *CourseEnrollmentMutation) ClearField(name string) error {
	switch name {
	case courseenrollment.FieldTargetCompletionDate:
		m.ClearTargetCompletionDate()
		return nil
	case courseenrollment.FieldCompletedAt:
		m.ClearCompletedAt()
		return nil
	}
	return fmt.Errorf("unknown CourseEnrollment nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *CourseEnrollmentMutation) ResetField(name string) error {
	switch name {
	case courseenrollment.FieldUserID:
		m.ResetUserID()
		return nil
	case courseenrollment.FieldEnrollmentDate:
		m.ResetEnrollmentDate()
		return nil
	case courseenrollment.FieldTargetCompletionDate:
		m.ResetTargetCompletionDate()
		return nil
	case courseenrollment.FieldStudyGoalHoursPerWeek:
		m.ResetStudyGoalHoursPerWeek()
		return nil
	case courseenrollment.FieldOverallProgressPercentage:
		m.ResetOverallProgressPercentage()
		return nil
	case courseenrollment.FieldSubjectsCompleted:
		m.ResetSubjectsCompleted()
		return nil
	case courseenrollment.FieldChaptersCompleted:
		m.ResetChaptersCompleted()
		return nil
	case courseenrollment.FieldTotalStudyTimeMinutes:
		m.ResetTotalStudyTimeMinutes()
		return nil
	case courseenrollment.FieldPreferredDifficulty:
		m.ResetPreferredDifficulty()
		return nil
	case courseenrollment.FieldLearningStylePreference:
		m.ResetLearningStylePreference()
		return nil
	case courseenrollment.FieldLastActivity:
		m.ResetLastActivity()
		return nil
	case courseenrollment.FieldCompletedAt:
		m.ResetCompletedAt()
		return nil
	case courseenrollment.FieldCourseID:
		m.ResetCourseID()
		return nil
	}
	return fmt.Errorf("unknown CourseEnrollment field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *CourseEnrollmentMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.course != nil {
		edges = append(edges, courseenrollment.EdgeCourse)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *CourseEnrollmentMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case courseenrollment.EdgeCourse:
		if id := m.course; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *CourseEnrollmentMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *CourseEnrollmentMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *CourseEnrollmentMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedcourse {
		edges = append(edges, courseenrollment.EdgeCourse)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *CourseEnrollmentMutation) EdgeCleared(name string) bool {
	switch name {
	case courseenrollment.EdgeCourse:
		return m.clearedcourse
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *CourseEnrollmentMutation) ClearEdge(name string) error {
	switch name {
	case courseenrollment.EdgeCourse:
		m.ClearCourse()
		return nil
	}
	return fmt.Errorf("unknown CourseEnrollment unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *CourseEnrollmentMutation) ResetEdge(name string) error {
	switch name {
	case courseenrollment.EdgeCourse:
		m.ResetCourse()
		return nil
	}
	return fmt.Errorf("unknown CourseEnrollment edge %s", name)
}

// QuizResultMutation represents an operation that mutates the QuizResult nodes in the graph.
type QuizResultMutation struct {
	config
	op                          Op
	typ                         string
	id                          *int
	user_id                     *string
	quiz_title                  *string
	quiz_type                   *string
	subject_domain              *string
	score                       *int
	addscore                    *int
	total_questions             *int
	addtotal_questions          *int
	percentage                  *float64
	addpercentage               *float64
	difficulty_level            *string
	time_taken_seconds          *int
	addtime_taken_seconds       *int
	concept_mastery             *map[string]schema.ConceptScore
	areas_for_improvement       *[]string
	appendareas_for_improvement []string
	questions                   *[]map[string]interface{}
	appendquestions             []map[string]interface{}
	user_answers                *map[string]schema.AnsweredQuestion
	completed_at                *time.Time
	clearedFields               map[string]struct{}
	chapter                     *int
	clearedchapter              bool
	done                        bool
	oldValue                    func(context.Context) (*QuizResult, error)
	predicates                  []predicate.QuizResult
}

var _ ent.Mutation = (*QuizResultMutation)(nil)

// quizresultOption allows management of the mutation configuration using functional options.
type quizresultOption func(*QuizResultMutation)

// newQuizResultMutation creates new mutation for the QuizResult entity.
func newQuizResultMutation(c config, op Op, opts ...quizresultOption) *QuizResultMutation {
	m := &QuizResultMutation{
		config:        c,
		op:            op,
		typ:           TypeQuizResult,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withQuizResultID sets the ID field of the mutation.
func withQuizResultID(id int) quizresultOption {
	return func(m *QuizResultMutation) {
		var (
			err   error
			once  sync.Once
			value *QuizResult
		)
		m.oldValue = func(ctx context.Context) (*QuizResult, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().QuizResult.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withQuizResult sets the old QuizResult of the mutation.
func withQuizResult(node *QuizResult) quizresultOption {
	return func(m *QuizResultMutation) {
		m.oldValue = func(context.Context) (*QuizResult, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m QuizResultMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m QuizResultMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *QuizResultMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *QuizResultMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().QuizResult.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetUserID sets the "user_id" field.
func (m *QuizResultMutation) SetUserID(s string) {
	m.user_id = &s
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *QuizResultMutation) UserID() (r string, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the QuizResult entity.
// If the QuizResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuizResultMutation) OldUserID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *QuizResultMutation) ResetUserID() {
	m.user_id = nil
}

// SetQuizTitle sets the "quiz_title" field.
func (m *QuizResultMutation) SetQuizTitle(s string) {
	m.quiz_title = &s
}

// QuizTitle returns the value of the "quiz_title" field in the mutation.
func (m *QuizResultMutation) QuizTitle() (r string, exists bool) {
	v := m.quiz_title
	if v == nil {
		return
	}
	return *v, true
}

// OldQuizTitle returns the old "quiz_title" field's value of the QuizResult entity.
// If the QuizResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuizResultMutation) OldQuizTitle(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQuizTitle is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQuizTitle requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQuizTitle: %w", err)
	}
	return oldValue.QuizTitle, nil
}

// ResetQuizTitle resets all changes to the "quiz_title" field.
func (m *QuizResultMutation) ResetQuizTitle() {
	m.quiz_title = nil
}

// SetQuizType sets the "quiz_type" field.
func (m *QuizResultMutation) SetQuizType(s string) {
	m.quiz_type = &s
}

// QuizType returns the value of the "quiz_type" field in the mutation.
func (m *QuizResultMutation) QuizType() (r string, exists bool) {
	v := m.quiz_type
	if v == nil {
		return
	}
	return *v, true
}

// OldQuizType returns the old "quiz_type" field's value of the QuizResult entity.
// If the QuizResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuizResultMutation) OldQuizType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQuizType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQuizType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQuizType: %w", err)
	}
	return oldValue.QuizType, nil
}

// ResetQuizType resets all changes to the "quiz_type" field.
func (m *QuizResultMutation) ResetQuizType() {
	m.quiz_type = nil
}

// SetSubjectDomain sets the "subject_domain" field.
func (m *QuizResultMutation) SetSubjectDomain(s string) {
	m.subject_domain = &s
}

// SubjectDomain returns the value of the "subject_domain" field in the mutation.
func (m *QuizResultMutation) SubjectDomain() (r string, exists bool) {
	v := m.subject_domain
	if v == nil {
		return
	}
	return *v, true
}

// OldSubjectDomain returns the old "subject_domain" field's value of the QuizResult entity.
// If the QuizResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuizResultMutation) OldSubjectDomain(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSubjectDomain is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSubjectDomain requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSubjectDomain: %w", err)
	}
	return oldValue.SubjectDomain, nil
}

// ClearSubjectDomain clears the value of the "subject_domain" field.
func (m *QuizResultMutation) ClearSubjectDomain() {
	m.subject_domain = nil
	m.clearedFields[quizresult.FieldSubjectDomain] = struct{}{}
}

// SubjectDomainCleared returns if the "subject_domain" field was cleared in this mutation.
func (m *QuizResultMutation) SubjectDomainCleared() bool {
	_, ok := m.clearedFields[quizresult.FieldSubjectDomain]
	return ok
}

// ResetSubjectDomain resets all changes to the "subject_domain" field.
func (m *QuizResultMutation) ResetSubjectDomain() {
	m.subject_domain = nil
	delete(m.clearedFields, quizresult.FieldSubjectDomain)
}

// SetScore sets the "score" field.
func (m *QuizResultMutation) SetScore(i int) {
	m.score = &i
	m.addscore = nil
}

// Score returns the value of the "score" field in the mutation.
func (m *QuizResultMutation) Score() (r int, exists bool) {
	v := m.score
	if v == nil {
		return
	}
	return *v, true
}

// OldScore returns the old "score" field's value of the QuizResult entity.
// If the QuizResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuizResultMutation) OldScore(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldScore: %w", err)
	}
	return oldValue.Score, nil
}

// AddScore adds i to the "score" field.
func (m *QuizResultMutation) AddScore(i int) {
	if m.addscore != nil {
		*m.addscore += i
	} else {
		m.addscore = &i
	}
}

// AddedScore returns the value that was added to the "score" field in this mutation.
func (m *QuizResultMutation) AddedScore() (r int, exists bool) {
	v := m.addscore
	if v == nil {
		return
	}
	return *v, true
}

// ResetScore resets all changes to the "score" field.
func (m *QuizResultMutation) ResetScore() {
	m.score = nil
	m.addscore = nil
}

// SetTotalQuestions sets the "total_questions" field.
func (m *QuizResultMutation) SetTotalQuestions(i int) {
	m.total_questions = &i
	m.addtotal_questions = nil
}

// TotalQuestions returns the value of the "total_questions" field in the mutation.
func (m *QuizResultMutation) TotalQuestions() (r int, exists bool) {
	v := m.total_questions
	if v == nil {
		return
	}
	return *v, true
}

// OldTotalQuestions returns the old "total_questions" field's value of the QuizResult entity.
// If the QuizResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuizResultMutation) OldTotalQuestions(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTotalQuestions is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTotalQuestions requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTotalQuestions: %w", err)
	}
	return oldValue.TotalQuestions, nil
}

// AddTotalQuestions adds i to the "total_questions" field.
func (m *QuizResultMutation) AddTotalQuestions(i int) {
	if m.addtotal_questions != nil {
		*m.addtotal_questions += i
	} else {
		m.addtotal_questions = &i
	}
}

// AddedTotalQuestions returns the value that was added to the "total_questions" field in this mutation.
func (m *QuizResultMutation) AddedTotalQuestions() (r int, exists bool) {
	v := m.addtotal_questions
	if v == nil {
		return
	}
	return *v, true
}

// ResetTotalQuestions resets all changes to the "total_questions" field.
func (m *QuizResultMutation) ResetTotalQuestions() {
	m.total_questions = nil
	m.addtotal_questions = nil
}

// SetPercentage sets the "percentage" field.
func (m *QuizResultMutation) SetPercentage(f float64) {
	m.percentage = &f
	m.addpercentage = nil
}

// Percentage returns the value of the "percentage" field in the mutation.
func (m *QuizResultMutation) Percentage() (r float64, exists bool) {
	v := m.percentage
	if v == nil {
		return
	}
	return *v, true
}

// OldPercentage returns the old "percentage" field's value of the QuizResult entity.
// If the QuizResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuizResultMutation) OldPercentage(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPercentage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPercentage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPercentage: %w", err)
	}
	return oldValue.Percentage, nil
}

// AddPercentage adds f to the "percentage" field.
func (m *QuizResultMutation) AddPercentage(f float64) {
	if m.addpercentage != nil {
		*m.addpercentage += f
	} else {
		m.addpercentage = &f
	}
}

// AddedPercentage returns the value that was added to the "percentage" field in this mutation.
func (m *QuizResultMutation) AddedPercentage() (r float64, exists bool) {
	v := m.addpercentage
	if v == nil {
		return
	}
	return *v, true
}

// ResetPercentage resets all changes to the "percentage" field.
func (m *QuizResultMutation) ResetPercentage() {
	m.percentage = nil
	m.addpercentage = nil
}

// SetDifficultyLevel sets the "difficulty_level" field.
func (m *QuizResultMutation) SetDifficultyLevel(s string) {
	m.difficulty_level = &s
}

// DifficultyLevel returns the value of the "difficulty_level" field in the mutation.
func (m *QuizResultMutation) DifficultyLevel() (r string, exists bool) {
	v := m.difficulty_level
	if v == nil {
		return
	}
	return *v, true
}

// OldDifficultyLevel returns the old "difficulty_level" field's value of the QuizResult entity.
// If the QuizResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuizResultMutation) OldDifficultyLevel(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDifficultyLevel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDifficultyLevel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDifficultyLevel: %w", err)
	}
	return oldValue.DifficultyLevel, nil
}

// ResetDifficultyLevel resets all changes to the "difficulty_level" field.
func (m *QuizResultMutation) ResetDifficultyLevel() {
	m.difficulty_level = nil
}

// SetTimeTakenSeconds sets the "time_taken_seconds" field.
func (m *QuizResultMutation) SetTimeTakenSeconds(i int) {
	m.time_taken_seconds = &i
	m.addtime_taken_seconds = nil
}

// TimeTakenSeconds returns the value of the "time_taken_seconds" field in the mutation.
func (m *QuizResultMutation) TimeTakenSeconds() (r int, exists bool) {
	v := m.time_taken_seconds
	if v == nil {
		return
	}
	return *v, true
}

// OldTimeTakenSeconds returns the old "time_taken_seconds" field's value of the QuizResult entity.
// If the QuizResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuizResultMutation) OldTimeTakenSeconds(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimeTakenSeconds is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimeTakenSeconds requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimeTakenSeconds: %w", err)
	}
	return oldValue.TimeTakenSeconds, nil
}

// AddTimeTakenSeconds adds i to the "time_taken_seconds" field.
func (m *QuizResultMutation) AddTimeTakenSeconds(i int) {
	if m.addtime_taken_seconds != nil {
		*m.addtime_taken_seconds += i
	} else {
		m.addtime_taken_seconds = &i
	}
}

// AddedTimeTakenSeconds returns the value that was added to the "time_taken_seconds" field in this mutation.
func (m *QuizResultMutation) AddedTimeTakenSeconds() (r int, exists bool) {
	v := m.addtime_taken_seconds
	if v == nil {
		return
	}
	return *v, true
}

// ClearTimeTakenSeconds clears the value of the "time_taken_seconds" field.
func (m *QuizResultMutation) ClearTimeTakenSeconds() {
	m.time_taken_seconds = nil
	m.addtime_taken_seconds = nil
	m.clearedFields[quizresult.FieldTimeTakenSeconds] = struct{}{}
}

// TimeTakenSecondsCleared returns if the "time_taken_seconds" field was cleared in this mutation.
func (m *QuizResultMutation) TimeTakenSecondsCleared() bool {
	_, ok := m.clearedFields[quizresult.FieldTimeTakenSeconds]
	return ok
}

// ResetTimeTakenSeconds resets all changes to the "time_taken_seconds" field.
func (m *QuizResultMutation) ResetTimeTakenSeconds() {
	m.time_taken_seconds = nil
	m.addtime_taken_seconds = nil
	delete(m.clearedFields, quizresult.FieldTimeTakenSeconds)
}

// SetConceptMastery sets the "concept_mastery" field.
func (m *QuizResultMutation) SetConceptMastery(ms map[string]schema.ConceptScore) {
	m.concept_mastery = &ms
}

// ConceptMastery returns the value of the "concept_mastery" field in the mutation.
func (m *QuizResultMutation) ConceptMastery() (r map[string]schema.ConceptScore, exists bool) {
	v := m.concept_mastery
	if v == nil {
		return
	}
	return *v, true
}

// OldConceptMastery returns the old "concept_mastery" field's value of the QuizResult entity.
// If the QuizResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuizResultMutation) OldConceptMastery(ctx context.Context) (v map[string]schema.ConceptScore, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConceptMastery is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConceptMastery requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConceptMastery: %w", err)
	}
	return oldValue.ConceptMastery, nil
}

// ClearConceptMastery clears the value of the "concept_mastery" field.
func (m *QuizResultMutation) ClearConceptMastery() {
	m.concept_mastery = nil
	m.clearedFields[quizresult.FieldConceptMastery] = struct{}{}
}

// ConceptMasteryCleared returns if the "concept_mastery" field was cleared in this mutation.
func (m *QuizResultMutation) ConceptMasteryCleared() bool {
	_, ok := m.clearedFields[quizresult.FieldConceptMastery]
	return ok
}

// ResetConceptMastery resets all changes to the "concept_mastery" field.
func (m *QuizResultMutation) ResetConceptMastery() {
	m.concept_mastery = nil
	delete(m.clearedFields, quizresult.FieldConceptMastery)
}

// SetAreasForImprovement sets the "areas_for_improvement" field.
func (m *QuizResultMutation) SetAreasForImprovement(s []string) {
	m.areas_for_improvement = &s
	m.appendareas_for_improvement = nil
}

// AreasForImprovement returns the value of the "areas_for_improvement" field in the mutation.
func (m *QuizResultMutation) AreasForImprovement() (r []string, exists bool) {
	v := m.areas_for_improvement
	if v == nil {
		return
	}
	return *v, true
}

// OldAreasForImprovement returns the old "areas_for_improvement" field's value of the QuizResult entity.
// If the QuizResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuizResultMutation) OldAreasForImprovement(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAreasForImprovement is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAreasForImprovement requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAreasForImprovement: %w", err)
	}
	return oldValue.AreasForImprovement, nil
}

// AppendAreasForImprovement adds s to the "areas_for_improvement" field.
func (m *QuizResultMutation) AppendAreasForImprovement(s []string) {
	m.appendareas_for_improvement = append(m.appendareas_for_improvement, s...)
}

// AppendedAreasForImprovement returns the list of values that were appended to the "areas_for_improvement" field in this mutation.
func (m *QuizResultMutation) AppendedAreasForImprovement() ([]string, bool) {
	if len(m.appendareas_for_improvement) == 0 {
		return nil, false
	}
	return m.appendareas_for_improvement, true
}

// ClearAreasForImprovement clears the value of the "areas_for_improvement" field.
func (m *QuizResultMutation) ClearAreasForImprovement() {
	m.areas_for_improvement = nil
	m.appendareas_for_improvement = nil
	m.clearedFields[quizresult.FieldAreasForImprovement] = struct{}{}
}

// AreasForImprovementCleared returns if the "areas_for_improvement" field was cleared in this mutation.
func (m *QuizResultMutation) AreasForImprovementCleared() bool {
	_, ok := m.clearedFields[quizresult.FieldAreasForImprovement]
	return ok
}

// ResetAreasForImprovement resets all changes to the "areas_for_improvement" field.
func (m *QuizResultMutation) ResetAreasForImprovement() {
	m.areas_for_improvement = nil
	m.appendareas_for_improvement = nil
	delete(m.clearedFields, quizresult.FieldAreasForImprovement)
}

// SetQuestions sets the "questions" field.
func (m *QuizResultMutation) SetQuestions(value []map[string]interface{}) {
	m.questions = &value
	m.appendquestions = nil
}

// Questions returns the value of the "questions" field in the mutation.
func (m *QuizResultMutation) Questions() (r []map[string]interface{}, exists bool) {
	v := m.questions
	if v == nil {
		return
	}
	return *v, true
}

// OldQuestions returns the old "questions" field's value of the QuizResult entity.
// If the QuizResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuizResultMutation) OldQuestions(ctx context.Context) (v []map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQuestions is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQuestions requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQuestions: %w", err)
	}
	return oldValue.Questions, nil
}

// AppendQuestions adds value to the "questions" field.
func (m *QuizResultMutation) AppendQuestions(value []map[string]interface{}) {
	m.appendquestions = append(m.appendquestions, value...)
}

// AppendedQuestions returns the list of values that were appended to the "questions" field in this mutation.
func (m *QuizResultMutation) AppendedQuestions() ([]map[string]interface{}, bool) {
	if len(m.appendquestions) == 0 {
		return nil, false
	}
	return m.appendquestions, true
}

// ClearQuestions clears the value of the "questions" field.
func (m *QuizResultMutation) ClearQuestions() {
	m.questions = nil
	m.appendquestions = nil
	m.clearedFields[quizresult.FieldQuestions] = struct{}{}
}

// QuestionsCleared returns if the "questions" field was cleared in this mutation.
func (m *QuizResultMutation) QuestionsCleared() bool {
	_, ok := m.clearedFields[quizresult.FieldQuestions]
	return ok
}

// ResetQuestions resets all changes to the "questions" field.
func (m *QuizResultMutation) ResetQuestions() {
	m.questions = nil
	m.appendquestions = nil
	delete(m.clearedFields, quizresult.FieldQuestions)
}

// SetUserAnswers sets the "user_answers" field.
func (m *QuizResultMutation) SetUserAnswers(mq map[string]schema.AnsweredQuestion) {
	m.user_answers = &mq
}

// UserAnswers returns the value of the "user_answers" field in the mutation.
func (m *QuizResultMutation) UserAnswers() (r map[string]schema.AnsweredQuestion, exists bool) {
	v := m.user_answers
	if v == nil {
		return
	}
	return *v, true
}

// OldUserAnswers returns the old "user_answers" field's value of the QuizResult entity.
// If the QuizResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuizResultMutation) OldUserAnswers(ctx context.Context) (v map[string]schema.AnsweredQuestion, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserAnswers is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserAnswers requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserAnswers: %w", err)
	}
	return oldValue.UserAnswers, nil
}

// ClearUserAnswers clears the value of the "user_answers" field.
func (m *QuizResultMutation) ClearUserAnswers() {
	m.user_answers = nil
	m.clearedFields[quizresult.FieldUserAnswers] = struct{}{}
}

// UserAnswersCleared returns if the "user_answers" field was cleared in this mutation.
func (m *QuizResultMutation) UserAnswersCleared() bool {
	_, ok := m.clearedFields[quizresult.FieldUserAnswers]
	return ok
}

// ResetUserAnswers resets all changes to the "user_answers" field.
func (m *QuizResultMutation) ResetUserAnswers() {
	m.user_answers = nil
	delete(m.clearedFields, quizresult.FieldUserAnswers)
}

// SetCompletedAt sets the "completed_at" field.
func (m *QuizResultMutation) SetCompletedAt(t time.Time) {
	m.completed_at = &t
}

// CompletedAt returns the value of the "completed_at" field in the mutation.
func (m *QuizResultMutation) CompletedAt() (r time.Time, exists bool) {
	v := m.completed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedAt returns the old "completed_at" field's value of the QuizResult entity.
// If the QuizResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuizResultMutation) OldCompletedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletedAt: %w", err)
	}
	return oldValue.CompletedAt, nil
}

// ResetCompletedAt resets all changes to the "completed_at" field.
func (m *QuizResultMutation) ResetCompletedAt() {
	m.completed_at = nil
}

// SetChapterID sets the "chapter_id" field.
func (m *QuizResultMutation) SetChapterID(i int) {
	m.chapter = &i
}

// ChapterID returns the value of the "chapter_id" field in the mutation.
func (m *QuizResultMutation) ChapterID() (r int, exists bool) {
	v := m.chapter
	if v == nil {
		return
	}
	return *v, true
}

// OldChapterID returns the old "chapter_id" field's value of the QuizResult entity.
// If the QuizResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuizResultMutation) OldChapterID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldChapterID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldChapterID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldChapterID: %w", err)
	}
	return oldValue.ChapterID, nil
}

// ResetChapterID resets all changes to the "chapter_id" field.
func (m *QuizResultMutation) ResetChapterID() {
	m.chapter = nil
}

// ClearChapter clears the "chapter" edge to the Chapter entity.
func (m *QuizResultMutation) ClearChapter() {
	m.clearedchapter = true
	m.clearedFields[quizresult.FieldChapterID] = struct{}{}
}

// ChapterCleared reports if the "chapter" edge to the Chapter entity was cleared.
func (m *QuizResultMutation) ChapterCleared() bool {
	return m.clearedchapter
}

// ChapterIDs returns the "chapter" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ChapterID instead. It exists only for internal usage by the builders.
func (m *QuizResultMutation) ChapterIDs() (ids []int) {
	if id := m.chapter; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetChapter resets all changes to the "chapter" edge.
func (m *QuizResultMutation) ResetChapter() {
	m.chapter = nil
	m.clearedchapter = false
}

// Where appends a list predicates to the QuizResultMutation builder.
func (m *QuizResultMutation) Where(ps ...predicate.QuizResult) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the QuizResultMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *QuizResultMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.QuizResult, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *QuizResultMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *QuizResultMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (QuizResult).
func (m *QuizResultMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *QuizResultMutation) Fields() []string {
	fields := make([]string, 0, 15)
	if m.user_id != nil {
		fields = append(fields, quizresult.FieldUserID)
	}
	if m.quiz_title != nil {
		fields = append(fields, quizresult.FieldQuizTitle)
	}
	if m.quiz_type != nil {
		fields = append(fields, quizresult.FieldQuizType)
	}
	if m.subject_domain != nil {
		fields = append(fields, quizresult.FieldSubjectDomain)
	}
	if m.score != nil {
		fields = append(fields, quizresult.FieldScore)
	}
	if m.total_questions != nil {
		fields = append(fields, quizresult.FieldTotalQuestions)
	}
	if m.percentage != nil {
		fields = append(fields, quizresult.FieldPercentage)
	}
	if m.difficulty_level != nil {
		fields = append(fields, quizresult.FieldDifficultyLevel)
	}
	if m.time_taken_seconds != nil {
		fields = append(fields, quizresult.FieldTimeTakenSeconds)
	}
	if m.concept_mastery != nil {
		fields = append(fields, quizresult.FieldConceptMastery)
	}
	if m.areas_for_improvement != nil {
		fields = append(fields, quizresult.FieldAreasForImprovement)
	}
	if m.questions != nil {
		fields = append(fields, quizresult.FieldQuestions)
	}
	if m.user_answers != nil {
		fields = append(fields, quizresult.FieldUserAnswers)
	}
	if m.completed_at != nil {
		fields = append(fields, quizresult.FieldCompletedAt)
	}
	if m.chapter != nil {
		fields = append(fields, quizresult.FieldChapterID)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *QuizResultMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case quizresult.FieldUserID:
		return m.UserID()
	case quizresult.FieldQuizTitle:
		return m.QuizTitle()
	case quizresult.FieldQuizType:
		return m.QuizType()
	case quizresult.FieldSubjectDomain:
		return m.SubjectDomain()
	case quizresult.FieldScore:
		return m.Score()
	case quizresult.FieldTotalQuestions:
		return m.TotalQuestions()
	case quizresult.FieldPercentage:
		return m.Percentage()
	case quizresult.FieldDifficultyLevel:
		return m.DifficultyLevel()
	case quizresult.FieldTimeTakenSeconds:
		return m.TimeTakenSeconds()
	case quizresult.FieldConceptMastery:
		return m.ConceptMastery()
	case quizresult.FieldAreasForImprovement:
		return m.AreasForImprovement()
	case quizresult.FieldQuestions:
		return m.Questions()
	case quizresult.FieldUserAnswers:
		return m.UserAnswers()
	case quizresult.FieldCompletedAt:
		return m.CompletedAt()
	case quizresult.FieldChapterID:
		return m.ChapterID()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *QuizResultMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case quizresult.FieldUserID:
		return m.OldUserID(ctx)
	case quizresult.FieldQuizTitle:
		return m.OldQuizTitle(ctx)
	case quizresult.FieldQuizType:
		return m.OldQuizType(ctx)
	case quizresult.FieldSubjectDomain:
		return m.OldSubjectDomain(ctx)
	case quizresult.FieldScore:
		return m.OldScore(ctx)
	case quizresult.FieldTotalQuestions:
		return m.OldTotalQuestions(ctx)
	case quizresult.FieldPercentage:
		return m.OldPercentage(ctx)
	case quizresult.FieldDifficultyLevel:
		return m.OldDifficultyLevel(ctx)
	case quizresult.FieldTimeTakenSeconds:
		return m.OldTimeTakenSeconds(ctx)
	case quizresult.FieldConceptMastery:
		return m.OldConceptMastery(ctx)
	case quizresult.FieldAreasForImprovement:
		return m.OldAreasForImprovement(ctx)
	case quizresult.FieldQuestions:
		return m.OldQuestions(ctx)
	case quizresult.FieldUserAnswers:
		return m.OldUserAnswers(ctx)
	case quizresult.FieldCompletedAt:
		return m.OldCompletedAt(ctx)
	case quizresult.FieldChapterID:
		return m.OldChapterID(ctx)
	}
	return nil, fmt.Errorf("unknown QuizResult field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *QuizResultMutation) SetField(name string, value ent.Value) error {
	switch name {
	case quizresult.FieldUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case quizresult.FieldQuizTitle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQuizTitle(v)
		return nil
	case quizresult.FieldQuizType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQuizType(v)
		return nil
	case quizresult.FieldSubjectDomain:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSubjectDomain(v)
		return nil
	case quizresult.FieldScore:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetScore(v)
		return nil
	case quizresult.FieldTotalQuestions:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTotalQuestions(v)
		return nil
	case quizresult.FieldPercentage:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPercentage(v)
		return nil
	case quizresult.FieldDifficultyLevel:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDifficultyLevel(v)
		return nil
	case quizresult.FieldTimeTakenSeconds:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimeTakenSeconds(v)
		return nil
	case quizresult.FieldConceptMastery:
		v, ok := value.(map[string]schema.ConceptScore)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConceptMastery(v)
		return nil
	case quizresult.FieldAreasForImprovement:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAreasForImprovement(v)
		return nil
	case quizresult.FieldQuestions:
		v, ok := value.([]map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQuestions(v)
		return nil
	case quizresult.FieldUserAnswers:
		v, ok := value.(map[string]schema.AnsweredQuestion)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserAnswers(v)
		return nil
	case quizresult.FieldCompletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedAt(v)
		return nil
	case quizresult.FieldChapterID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetChapterID(v)
		return nil
	}
	return fmt.Errorf("unknown QuizResult field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *QuizResultMutation) AddedFields() []string {
	var fields []string
	if m.addscore != nil {
		fields = append(fields, quizresult.FieldScore)
	}
	if m.addtotal_questions != nil {
		fields = append(fields, quizresult.FieldTotalQuestions)
	}
	if m.addpercentage != nil {
		fields = append(fields, quizresult.FieldPercentage)
	}
	if m.addtime_taken_seconds != nil {
		fields = append(fields, quizresult.FieldTimeTakenSeconds)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *QuizResultMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case quizresult.FieldScore:
		return m.AddedScore()
	case quizresult.FieldTotalQuestions:
		return m.AddedTotalQuestions()
	case quizresult.FieldPercentage:
		return m.AddedPercentage()
	case quizresult.FieldTimeTakenSeconds:
		return m.AddedTimeTakenSeconds()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *QuizResultMutation) AddField(name string, value ent.Value) error {
	switch name {
	case quizresult.FieldScore:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddScore(v)
		return nil
	case quizresult.FieldTotalQuestions:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTotalQuestions(v)
		return nil
	case quizresult.FieldPercentage:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPercentage(v)
		return nil
	case quizresult.FieldTimeTakenSeconds:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTimeTakenSeconds(v)
		return nil
	}
	return fmt.Errorf("unknown QuizResult numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *QuizResultMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(quizresult.FieldSubjectDomain) {
		fields = append(fields, quizresult.FieldSubjectDomain)
	}
	if m.FieldCleared(quizresult.FieldTimeTakenSeconds) {
		fields = append(fields, quizresult.FieldTimeTakenSeconds)
	}
	if m.FieldCleared(quizresult.FieldConceptMastery) {
		fields = append(fields, quizresult.FieldConceptMastery)
	}
	if m.FieldCleared(quizresult.FieldAreasForImprovement) {
		fields = append(fields, quizresult.FieldAreasForImprovement)
	}
	if m.FieldCleared(quizresult.FieldQuestions) {
		fields = append(fields, quizresult.FieldQuestions)
	}
	if m.FieldCleared(quizresult.FieldUserAnswers) {
		fields = append(fields, quizresult.FieldUserAnswers)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *QuizResultMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *QuizResultMutation) ClearField(name string) error {
	switch name {
	case quizresult.FieldSubjectDomain:
		m.ClearSubjectDomain()
		return nil
	case quizresult.FieldTimeTakenSeconds:
		m.ClearTimeTakenSeconds()
		return nil
	case quizresult.FieldConceptMastery:
		m.ClearConceptMastery()
		return nil
	case quizresult.FieldAreasForImprovement:
		m.ClearAreasForImprovement()
		return nil
	case quizresult.FieldQuestions:
		m.ClearQuestions()
		return nil
	case quizresult.FieldUserAnswers:
		m.ClearUserAnswers()
		return nil
	}
	return fmt.Errorf("unknown QuizResult nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *QuizResultMutation) ResetField(name string) error {
	switch name {
	case quizresult.FieldUserID:
		m.ResetUserID()
		return nil
	case quizresult.FieldQuizTitle:
		m.ResetQuizTitle()
		return nil
	case quizresult.FieldQuizType:
		m.ResetQuizType()
		return nil
	case quizresult.FieldSubjectDomain:
		m.ResetSubjectDomain()
		return nil
	case quizresult.FieldScore:
		m.ResetScore()
		return nil
	case quizresult.FieldTotalQuestions:
		m.ResetTotalQuestions()
		return nil
	case quizresult.FieldPercentage:
		m.ResetPercentage()
		return nil
	case quizresult.FieldDifficultyLevel:
		m.ResetDifficultyLevel()
		return nil
	case quizresult.FieldTimeTakenSeconds:
		m.ResetTimeTakenSeconds()
		return nil
	case quizresult.FieldConceptMastery:
		m.ResetConceptMastery()
		return nil
	case quizresult.FieldAreasForImprovement:
		m.ResetAreasForImprovement()
		return nil
	case quizresult.FieldQuestions:
		m.ResetQuestions()
		return nil
	case quizresult.FieldUserAnswers:
		m.ResetUserAnswers()
		return nil
	case quizresult.FieldCompletedAt:
		m.ResetCompletedAt()
		return nil
	case quizresult.FieldChapterID:
		m.ResetChapterID()
		return nil
	}
	return fmt.Errorf("unknown QuizResult field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *QuizResultMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.chapter != nil {
		edges = append(edges, quizresult.EdgeChapter)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *QuizResultMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case quizresult.EdgeChapter:
		if id := m.chapter; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *QuizResultMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *QuizResultMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *QuizResultMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedchapter {
		edges = append(edges, quizresult.EdgeChapter)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *QuizResultMutation) EdgeCleared(name string) bool {
	switch name {
	case quizresult.EdgeChapter:
		return m.clearedchapter
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *QuizResultMutation) ClearEdge(name string) error {
	switch name {
	case quizresult.EdgeChapter:
		m.ClearChapter()
		return nil
	}
	return fmt.Errorf("unknown QuizResult unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *QuizResultMutation) ResetEdge(name string) error {
	switch name {
	case quizresult.EdgeChapter:
		m.ResetChapter()
		return nil
	}
	return fmt.Errorf("unknown QuizResult edge %s", name)
}

// StudySessionMutation represents an operation that mutates the StudySession nodes in the graph.
type StudySessionMutation struct {
	config
	op                        Op
	typ                       string
	id                        *int
	user_id                   *string
	session_start             *time.Time
	session_end               *time.Time
	duration_minutes          *int
	addduration_minutes       *int
	activities                *[]schema.Activity
	appendactivities          []schema.Activity
	concepts_studied          *[]string
	appendconcepts_studied    []string
	difficulty_adjustments    *int
	adddifficulty_adjustments *int
	completion_progress       *float64
	addcompletion_progress    *float64
	questions_asked           *int
	addquestions_asked        *int
	bookmarks_created         *int
	addbookmarks_created      *int
	quizzes_completed         *int
	addquizzes_completed      *int
	engagement_score          *float64
	addengagement_score       *float64
	focus_score               *float64
	addfocus_score            *float64
	learning_effectiveness    *float64
	addlearning_effectiveness *float64
	clearedFields             map[string]struct{}
	course                    *int
	clearedcourse             bool
	subject                   *int
	clearedsubject            bool
	chapter                   *int
	clearedchapter            bool
	done                      bool
	oldValue                  func(context.Context) (*StudySession, error)
	predicates                []predicate.StudySession
}

var _ ent.Mutation = (*StudySessionMutation)(nil)

// studysessionOption allows management of the mutation configuration using functional options.
type studysessionOption func(*StudySessionMutation)

// newStudySessionMutation creates new mutation for the StudySession entity.
func newStudySessionMutation(c config, op Op, opts ...studysessionOption) *StudySessionMutation {
	m := &StudySessionMutation{
		config:        c,
		op:            op,
		typ:           TypeStudySession,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withStudySessionID sets the ID field of the mutation.
func withStudySessionID(id int) studysessionOption {
	return func(m *StudySessionMutation) {
		var (
			err   error
			once  sync.Once
			value *StudySession
		)
		m.oldValue = func(ctx context.Context) (*StudySession, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().StudySession.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withStudySession sets the old StudySession of the mutation.
func withStudySession(node *StudySession) studysessionOption {
	return func(m *StudySessionMutation) {
		m.oldValue = func(context.Context) (*StudySession, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m StudySessionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m StudySessionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *StudySessionMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *StudySessionMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().StudySession.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetUserID sets the "user_id" field.
func (m *StudySessionMutation) SetUserID(s string) {
	m.user_id = &s
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *StudySessionMutation) UserID() (r string, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the StudySession entity.
// If the StudySession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StudySessionMutation) OldUserID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *StudySessionMutation) ResetUserID() {
	m.user_id = nil
}

// SetSessionStart sets the "session_start" field.
func (m *StudySessionMutation) SetSessionStart(t time.Time) {
	m.session_start = &t
}

// SessionStart returns the value of the "session_start" field in the mutation.
func (m *StudySessionMutation) SessionStart() (r time.Time, exists bool) {
	v := m.session_start
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionStart returns the old "session_start" field's value of the StudySession entity.
// If the StudySession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StudySessionMutation) OldSessionStart(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionStart is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionStart requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionStart: %w", err)
	}
	return oldValue.SessionStart, nil
}

// ResetSessionStart resets all changes to the "session_start" field.
func (m *StudySessionMutation) ResetSessionStart() {
	m.session_start = nil
}

// SetSessionEnd sets the "session_end" field.
func (m *StudySessionMutation) SetSessionEnd(t time.Time) {
	m.session_end = &t
}

// SessionEnd returns the value of the "session_end" field in the mutation.
func (m *StudySessionMutation) SessionEnd() (r time.Time, exists bool) {
	v := m.session_end
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionEnd returns the old "session_end" field's value of the StudySession entity.
// If the StudySession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StudySessionMutation) OldSessionEnd(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionEnd is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionEnd requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionEnd: %w", err)
	}
	return oldValue.SessionEnd, nil
}

// ClearSessionEnd clears the value of the "session_end" field.
func (m *StudySessionMutation) ClearSessionEnd() {
	m.session_end = nil
	m.clearedFields[studysession.FieldSessionEnd] = struct{}{}
}

// SessionEndCleared returns if the "session_end" field was cleared in this mutation.
func (m *StudySessionMutation) SessionEndCleared() bool {
	_, ok := m.clearedFields[studysession.FieldSessionEnd]
	return ok
}

// ResetSessionEnd resets all changes to the "session_end" field.
func (m *StudySessionMutation) ResetSessionEnd() {
	m.session_end = nil
	delete(m.clearedFields, studysession.FieldSessionEnd)
}

// SetDurationMinutes sets the "duration_minutes" field.
func (m *StudySessionMutation) SetDurationMinutes(i int) {
	m.duration_minutes = &i
	m.addduration_minutes = nil
}

// DurationMinutes returns the value of the "duration_minutes" field in the mutation.
func (m *StudySessionMutation) DurationMinutes() (r int, exists bool) {
	v := m.duration_minutes
	if v == nil {
		return
	}
	return *v, true
}

// OldDurationMinutes returns the old "duration_minutes" field's value of the StudySession entity.
// If the StudySession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StudySessionMutation) OldDurationMinutes(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDurationMinutes is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDurationMinutes requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDurationMinutes: %w", err)
	}
	return oldValue.DurationMinutes, nil
}

// AddDurationMinutes adds i to the "duration_minutes" field.
func (m *StudySessionMutation) AddDurationMinutes(i int) {
	if m.addduration_minutes != nil {
		*m.addduration_minutes += i
	} else {
		m.addduration_minutes = &i
	}
}

// AddedDurationMinutes returns the value that was added to the "duration_minutes" field in this mutation.
func (m *StudySessionMutation) AddedDurationMinutes() (r int, exists bool) {
	v := m.addduration_minutes
	if v == nil {
		return
	}
	return *v, true
}

// ClearDurationMinutes clears the value of the "duration_minutes" field.
func (m *StudySessionMutation) ClearDurationMinutes() {
	m.duration_minutes = nil
	m.addduration_minutes = nil
	m.clearedFields[studysession.FieldDurationMinutes] = struct{}{}
}

// DurationMinutesCleared returns if the "duration_minutes" field was cleared in this mutation.
func (m *StudySessionMutation) DurationMinutesCleared() bool {
	_, ok := m.clearedFields[studysession.FieldDurationMinutes]
	return ok
}

// ResetDurationMinutes resets all changes to the "duration_minutes" field.
func (m *StudySessionMutation) ResetDurationMinutes() {
	m.duration_minutes = nil
	m.addduration_minutes = nil
	delete(m.clearedFields, studysession.FieldDurationMinutes)
}

// SetActivities sets the "activities" field.
func (m *StudySessionMutation) SetActivities(s []schema.Activity) {
	m.activities = &s
	m.appendactivities = nil
}

// Activities returns the value of the "activities" field in the mutation.
func (m *StudySessionMutation) Activities() (r []schema.Activity, exists bool) {
	v := m.activities
	if v == nil {
		return
	}
	return *v, true
}

// OldActivities returns the old "activities" field's value of the StudySession entity.
// If the StudySession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StudySessionMutation) OldActivities(ctx context.Context) (v []schema.Activity, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldActivities is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldActivities requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldActivities: %w", err)
	}
	return oldValue.Activities, nil
}

// AppendActivities adds s to the "activities" field.
func (m *StudySessionMutation) AppendActivities(s []schema.Activity) {
	m.appendactivities = append(m.appendactivities, s...)
}

// AppendedActivities returns the list of values that were appended to the "activities" field in this mutation.
func (m *StudySessionMutation) AppendedActivities() ([]schema.Activity, bool) {
	if len(m.appendactivities) == 0 {
		return nil, false
	}
	return m.appendactivities, true
}

// ClearActivities clears the value of the "activities" field.
func (m *StudySessionMutation) ClearActivities() {
	m.activities = nil
	m.appendactivities = nil
	m.clearedFields[studysession.FieldActivities] = struct{}{}
}

// ActivitiesCleared returns if the "activities" field was cleared in this mutation.
func (m *StudySessionMutation) ActivitiesCleared() bool {
	_, ok := m.clearedFields[studysession.FieldActivities]
	return ok
}

// ResetActivities resets all changes to the "activities" field.
func (m *StudySessionMutation) ResetActivities() {
	m.activities = nil
	m.appendactivities = nil
	delete(m.clearedFields, studysession.FieldActivities)
}

// SetConceptsStudied sets the "concepts_studied" field.
func (m *StudySessionMutation) SetConceptsStudied(s []string) {
	m.concepts_studied = &s
	m.appendconcepts_studied = nil
}

// ConceptsStudied returns the value of the "concepts_studied" field in the mutation.
func (m *StudySessionMutation) ConceptsStudied() (r []string, exists bool) {
	v := m.concepts_studied
	if v == nil {
		return
	}
	return *v, true
}

// OldConceptsStudied returns the old "concepts_studied" field's value of the StudySession entity.
// If the StudySession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StudySessionMutation) OldConceptsStudied(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConceptsStudied is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConceptsStudied requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConceptsStudied: %w", err)
	}
	return oldValue.ConceptsStudied, nil
}

// AppendConceptsStudied adds s to the "concepts_studied" field.
func (m *StudySessionMutation) AppendConceptsStudied(s []string) {
	m.appendconcepts_studied = append(m.appendconcepts_studied, s...)
}

// AppendedConceptsStudied returns the list of values that were appended to the "concepts_studied" field in this mutation.
func (m *StudySessionMutation) AppendedConceptsStudied() ([]string, bool) {
	if len(m.appendconcepts_studied) == 0 {
		return nil, false
	}
	return m.appendconcepts_studied, true
}

// ClearConceptsStudied clears the value of the "concepts_studied" field.
func (m *StudySessionMutation) ClearConceptsStudied() {
	m.concepts_studied = nil
	m.appendconcepts_studied = nil
	m.clearedFields[studysession.FieldConceptsStudied] = struct{}{}
}

// ConceptsStudiedCleared returns if the "concepts_studied" field was cleared in this mutation.
func (m *StudySessionMutation) ConceptsStudiedCleared() bool {
	_, ok := m.clearedFields[studysession.FieldConceptsStudied]
	return ok
}

// ResetConceptsStudied resets all changes to the "concepts_studied" field.
func (m *StudySessionMutation) ResetConceptsStudied() {
	m.concepts_studied = nil
	m.appendconcepts_studied = nil
	delete(m.clearedFields, studysession.FieldConceptsStudied)
}

// SetDifficultyAdjustments sets the "difficulty_adjustments" field.
func (m *StudySessionMutation) SetDifficultyAdjustments(i int) {
	m.difficulty_adjustments = &i
	m.adddifficulty_adjustments = nil
}

// DifficultyAdjustments returns the value of the "difficulty_adjustments" field in the mutation.
func (m *StudySessionMutation) DifficultyAdjustments() (r int, exists bool) {
	v := m.difficulty_adjustments
	if v == nil {
		return
	}
	return *v, true
}

// OldDifficultyAdjustments returns the old "difficulty_adjustments" field's value of the StudySession entity.
// If the StudySession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StudySessionMutation) OldDifficultyAdjustments(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDifficultyAdjustments is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDifficultyAdjustments requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDifficultyAdjustments: %w", err)
	}
	return oldValue.DifficultyAdjustments, nil
}

// AddDifficultyAdjustments adds i to the "difficulty_adjustments" field.
func (m *StudySessionMutation) AddDifficultyAdjustments(i int) {
	if m.adddifficulty_adjustments != nil {
		*m.adddifficulty_adjustments += i
	} else {
		m.adddifficulty_adjustments = &i
	}
}

// AddedDifficultyAdjustments returns the value that was added to the "difficulty_adjustments" field in this mutation.
func (m *StudySessionMutation) AddedDifficultyAdjustments() (r int, exists bool) {
	v := m.adddifficulty_adjustments
	if v == nil {
		return
	}
	return *v, true
}

// ResetDifficultyAdjustments resets all changes to the "difficulty_adjustments" field.
func (m *StudySessionMutation) ResetDifficultyAdjustments() {
	m.difficulty_adjustments = nil
	m.adddifficulty_adjustments = nil
}

// SetCompletionProgress sets the "completion_progress" field.
func (m *StudySessionMutation) SetCompletionProgress(f float64) {
	m.completion_progress = &f
	m.addcompletion_progress = nil
}

// CompletionProgress returns the value of the "completion_progress" field in the mutation.
func (m *StudySessionMutation) CompletionProgress() (r float64, exists bool) {
	v := m.completion_progress
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletionProgress returns the old "completion_progress" field's value of the StudySession entity.
// If the StudySession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StudySessionMutation) OldCompletionProgress(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletionProgress is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletionProgress requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletionProgress: %w", err)
	}
	return oldValue.CompletionProgress, nil
}

// AddCompletionProgress adds f to the "completion_progress" field.
func (m *StudySessionMutation) AddCompletionProgress(f float64) {
	if m.addcompletion_progress != nil {
		*m.addcompletion_progress += f
	} else {
		m.addcompletion_progress = &f
	}
}

// AddedCompletionProgress returns the value that was added to the "completion_progress" field in this mutation.
func (m *StudySessionMutation) AddedCompletionProgress() (r float64, exists bool) {
	v := m.addcompletion_progress
	if v == nil {
		return
	}
	return *v, true
}

// ResetCompletionProgress resets all changes to the "completion_progress" field.
func (m *StudySessionMutation) ResetCompletionProgress() {
	m.completion_progress = nil
	m.addcompletion_progress = nil
}

// SetQuestionsAsked sets the "questions_asked" field.
func (m *StudySessionMutation) SetQuestionsAsked(i int) {
	m.questions_asked = &i
	m.addquestions_asked = nil
}

// QuestionsAsked returns the value of the "questions_asked" field in the mutation.
func (m *StudySessionMutation) QuestionsAsked() (r int, exists bool) {
	v := m.questions_asked
	if v == nil {
		return
	}
	return *v, true
}

// OldQuestionsAsked returns the old "questions_asked" field's value of the StudySession entity.
// If the StudySession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StudySessionMutation) OldQuestionsAsked(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQuestionsAsked is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQuestionsAsked requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQuestionsAsked: %w", err)
	}
	return oldValue.QuestionsAsked, nil
}

// AddQuestionsAsked adds i to the "questions_asked" field.
func (m *StudySessionMutation) AddQuestionsAsked(i int) {
	if m.addquestions_asked != nil {
		*m.addquestions_asked += i
	} else {
		m.addquestions_asked = &i
	}
}

// AddedQuestionsAsked returns the value that was added to the "questions_asked" field in this mutation.
func (m *StudySessionMutation) AddedQuestionsAsked() (r int, exists bool) {
	v := m.addquestions_asked
	if v == nil {
		return
	}
	return *v, true
}

// ResetQuestionsAsked resets all changes to the "questions_asked" field.
func (m *StudySessionMutation) ResetQuestionsAsked() {
	m.questions_asked = nil
	m.addquestions_asked = nil
}

// SetBookmarksCreated sets the "bookmarks_created" field.
func (m *StudySessionMutation) SetBookmarksCreated(i int) {
	m.bookmarks_created = &i
	m.addbookmarks_created = nil
}

// BookmarksCreated returns the value of the "bookmarks_created" field in the mutation.
func (m *StudySessionMutation) BookmarksCreated() (r int, exists bool) {
	v := m.bookmarks_created
	if v == nil {
		return
	}
	return *v, true
}

// OldBookmarksCreated returns the old "bookmarks_created" field's value of the StudySession entity.
// If the StudySession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StudySessionMutation) OldBookmarksCreated(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBookmarksCreated is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBookmarksCreated requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBookmarksCreated: %w", err)
	}
	return oldValue.BookmarksCreated, nil
}

// AddBookmarksCreated adds i to the "bookmarks_created" field.
func (m *StudySessionMutation) AddBookmarksCreated(i int) {
	if m.addbookmarks_created != nil {
		*m.addbookmarks_created += i
	} else {
		m.addbookmarks_created = &i
	}
}

// AddedBookmarksCreated returns the value that was added to the "bookmarks_created" field in this mutation.
func (m *StudySessionMutation) AddedBookmarksCreated() (r int, exists bool) {
	v := m.addbookmarks_created
	if v == nil {
		return
	}
	return *v, true
}

// ResetBookmarksCreated resets all changes to the "bookmarks_created" field.
func (m *StudySessionMutation) ResetBookmarksCreated() {
	m.bookmarks_created = nil
	m.addbookmarks_created = nil
}

// SetQuizzesCompleted sets the "quizzes_completed" field.
func (m *StudySessionMutation) SetQuizzesCompleted(i int) {
	m.quizzes_completed = &i
	m.addquizzes_completed = nil
}

// QuizzesCompleted returns the value of the "quizzes_completed" field in the mutation.
func (m *StudySessionMutation) QuizzesCompleted() (r int, exists bool) {
	v := m.quizzes_completed
	if v == nil {
		return
	}
	return *v, true
}

// OldQuizzesCompleted returns the old "quizzes_completed" field's value of the StudySession entity.
// If the StudySession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StudySessionMutation) OldQuizzesCompleted(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQuizzesCompleted is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQuizzesCompleted requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQuizzesCompleted: %w", err)
	}
	return oldValue.QuizzesCompleted, nil
}

// AddQuizzesCompleted adds i to the "quizzes_completed" field.
func (m *StudySessionMutation) AddQuizzesCompleted(i int) {
	if m.addquizzes_completed != nil {
		*m.addquizzes_completed += i
	} else {
		m.addquizzes_completed = &i
	}
}

// AddedQuizzesCompleted returns the value that was added to the "quizzes_completed" field in this mutation.
func (m *StudySessionMutation) AddedQuizzesCompleted() (r int, exists bool) {
	v := m.addquizzes_completed
	if v == nil {
		return
	}
	return *v, true
}

// ResetQuizzesCompleted resets all changes to the "quizzes_completed" field.
func (m *StudySessionMutation) ResetQuizzesCompleted() {
	m.quizzes_completed = nil
	m.addquizzes_completed = nil
}

// SetEngagementScore sets the "engagement_score" field.
func (m *StudySessionMutation) SetEngagementScore(f float64) {
	m.engagement_score = &f
	m.addengagement_score = nil
}

// EngagementScore returns the value of the "engagement_score" field in the mutation.
func (m *StudySessionMutation) EngagementScore() (r float64, exists bool) {
	v := m.engagement_score
	if v == nil {
		return
	}
	return *v, true
}

// OldEngagementScore returns the old "engagement_score" field's value of the StudySession entity.
// If the StudySession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StudySessionMutation) OldEngagementScore(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEngagementScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEngagementScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEngagementScore: %w", err)
	}
	return oldValue.EngagementScore, nil
}

// AddEngagementScore adds f to the "engagement_score" field.
func (m *StudySessionMutation) AddEngagementScore(f float64) {
	if m.addengagement_score != nil {
		*m.addengagement_score += f
	} else {
		m.addengagement_score = &f
	}
}

// AddedEngagementScore returns the value that was added to the "engagement_score" field in this mutation.
func (m *StudySessionMutation) AddedEngagementScore() (r float64, exists bool) {
	v := m.addengagement_score
	if v == nil {
		return
	}
	return *v, true
}

// ResetEngagementScore resets all changes to the "engagement_score" field.
func (m *StudySessionMutation) ResetEngagementScore() {
	m.engagement_score = nil
	m.addengagement_score = nil
}

// SetFocusScore sets the "focus_score" field.
func (m *StudySessionMutation) SetFocusScore(f float64) {
	m.focus_score = &f
	m.addfocus_score = nil
}

// FocusScore returns the value of the "focus_score" field in the mutation.
func (m *StudySessionMutation) FocusScore() (r float64, exists bool) {
	v := m.focus_score
	if v == nil {
		return
	}
	return *v, true
}

// OldFocusScore returns the old "focus_score" field's value of the StudySession entity.
// If the StudySession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StudySessionMutation) OldFocusScore(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFocusScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFocusScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFocusScore: %w", err)
	}
	return oldValue.FocusScore, nil
}

// AddFocusScore adds f to the "focus_score" field.
func (m *StudySessionMutation) AddFocusScore(f float64) {
	if m.addfocus_score != nil {
		*m.addfocus_score += f
	} else {
		m.addfocus_score = &f
	}
}

// AddedFocusScore returns the value that was added to the "focus_score" field in this mutation.
func (m *StudySessionMutation) AddedFocusScore() (r float64, exists bool) {
	v := m.addfocus_score
	if v == nil {
		return
	}
	return *v, true
}

// ResetFocusScore resets all changes to the "focus_score" field.
func (m *StudySessionMutation) ResetFocusScore() {
	m.focus_score = nil
	m.addfocus_score = nil
}

// SetLearningEffectiveness sets the "learning_effectiveness" field.
func (m *StudySessionMutation) SetLearningEffectiveness(f float64) {
	m.learning_effectiveness = &f
	m.addlearning_effectiveness = nil
}

// LearningEffectiveness returns the value of the "learning_effectiveness" field in the mutation.
func (m *StudySessionMutation) LearningEffectiveness() (r float64, exists bool) {
	v := m.learning_effectiveness
	if v == nil {
		return
	}
	return *v, true
}

// OldLearningEffectiveness returns the old "learning_effectiveness" field's value of the StudySession entity.
// If the StudySession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StudySessionMutation) OldLearningEffectiveness(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLearningEffectiveness is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLearningEffectiveness requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLearningEffectiveness: %w", err)
	}
	return oldValue.LearningEffectiveness, nil
}

// AddLearningEffectiveness adds f to the "learning_effectiveness" field.
func (m *StudySessionMutation) AddLearningEffectiveness(f float64) {
	if m.addlearning_effectiveness != nil {
		*m.addlearning_effectiveness += f
	} else {
		m.addlearning_effectiveness = &f
	}
}

// AddedLearningEffectiveness returns the value that was added to the "learning_effectiveness" field in this mutation.
func (m *StudySessionMutation) AddedLearningEffectiveness() (r float64, exists bool) {
	v := m.addlearning_effectiveness
	if v == nil {
		return
	}
	return *v, true
}

// ResetLearningEffectiveness resets all changes to the "learning_effectiveness" field.
func (m *StudySessionMutation) ResetLearningEffectiveness() {
	m.learning_effectiveness = nil
	m.addlearning_effectiveness = nil
}

// SetCourseID sets the "course_id" field.
func (m *StudySessionMutation) SetCourseID(i int) {
	m.course = &i
}

// CourseID returns the value of the "course_id" field in the mutation.
func (m *StudySessionMutation) CourseID() (r int, exists bool) {
	v := m.course
	if v == nil {
		return
	}
	return *v, true
}

// OldCourseID returns the old "course_id" field's value of the StudySession entity.
// If the StudySession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StudySessionMutation) OldCourseID(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCourseID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCourseID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCourseID: %w", err)
	}
	return oldValue.CourseID, nil
}

// ClearCourseID clears the value of the "course_id" field.
func (m *StudySessionMutation) ClearCourseID() {
	m.course = nil
	m.clearedFields[studysession.FieldCourseID] = struct{}{}
}

// CourseIDCleared returns if the "course_id" field was cleared in this mutation.
func (m *StudySessionMutation) CourseIDCleared() bool {
	_, ok := m.clearedFields[studysession.FieldCourseID]
	return ok
}

// ResetCourseID resets all changes to the "course_id" field.
func (m *StudySessionMutation) ResetCourseID() {
	m.course = nil
	delete(m.clearedFields, studysession.FieldCourseID)
}

// SetSubjectID sets the "subject_id" field.
func (m *StudySessionMutation) SetSubjectID(i int) {
	m.subject = &i
}

// SubjectID returns the value of the "subject_id" field in the mutation.
func (m *StudySessionMutation) SubjectID() (r int, exists bool) {
	v := m.subject
	if v == nil {
		return
	}
	return *v, true
}

// OldSubjectID returns the old "subject_id" field's value of the StudySession entity.
// If the StudySession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StudySessionMutation) OldSubjectID(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSubjectID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSubjectID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSubjectID: %w", err)
	}
	return oldValue.SubjectID, nil
}

// ClearSubjectID clears the value of the "subject_id" field.
func (m *StudySessionMutation) ClearSubjectID() {
	m.subject = nil
	m.clearedFields[studysession.FieldSubjectID] = struct{}{}
}

// SubjectIDCleared returns if the "subject_id" field was cleared in this mutation.
func (m *StudySessionMutation) SubjectIDCleared() bool {
	_, ok := m.clearedFields[studysession.FieldSubjectID]
	return ok
}

// ResetSubjectID resets all changes to the "subject_id" field.
func (m *StudySessionMutation) ResetSubjectID() {
	m.subject = nil
	delete(m.clearedFields, studysession.FieldSubjectID)
}

// SetChapterID sets the "chapter_id" field.
func (m *StudySessionMutation) SetChapterID(i int) {
	m.chapter = &i
}

// ChapterID returns the value of the "chapter_id" field in the mutation.
func (m *StudySessionMutation) ChapterID() (r int, exists bool) {
	v := m.chapter
	if v == nil {
		return
	}
	return *v, true
}

// OldChapterID returns the old "chapter_id" field's value of the StudySession entity.
// If the StudySession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StudySessionMutation) OldChapterID(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldChapterID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldChapterID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldChapterID: %w", err)
	}
	return oldValue.ChapterID, nil
}

// ClearChapterID clears the value of the "chapter_id" field.
func (m *StudySessionMutation) ClearChapterID() {
	m.chapter = nil
	m.clearedFields[studysession.FieldChapterID] = struct{}{}
}

// ChapterIDCleared returns if the "chapter_id" field was cleared in this mutation.
func (m *StudySessionMutation) ChapterIDCleared() bool {
	_, ok := m.clearedFields[studysession.FieldChapterID]
	return ok
}

// ResetChapterID resets all changes to the "chapter_id" field.
func (m *StudySessionMutation) ResetChapterID() {
	m.chapter = nil
	delete(m.clearedFields, studysession.FieldChapterID)
}

// ClearCourse clears the "course" edge to the Course entity.
func (m *StudySessionMutation) ClearCourse() {
	m.clearedcourse = true
	m.clearedFields[studysession.FieldCourseID] = struct{}{}
}

// CourseCleared reports if the "course" edge to the Course entity was cleared.
func (m *StudySessionMutation) CourseCleared() bool {
	return m.CourseIDCleared() || m.clearedcourse
}

// CourseIDs returns the "course" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// CourseID instead. It exists only for internal usage by the builders.
func (m *StudySessionMutation) CourseIDs() (ids []int) {
	if id := m.course; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetCourse resets all changes to the "course" edge.
func (m *StudySessionMutation) ResetCourse() {
	m.course = nil
	m.clearedcourse = false
}

// ClearSubject clears the "subject" edge to the Subject entity.
func (m *StudySessionMutation) ClearSubject() {
	m.clearedsubject = true
	m.clearedFields[studysession.FieldSubjectID] = struct{}{}
}

// SubjectCleared reports if the "subject" edge to the Subject entity was cleared.
func (m *StudySessionMutation) SubjectCleared() bool {
	return m.SubjectIDCleared() || m.clearedsubject
}

// SubjectIDs returns the "subject" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// SubjectID instead. It exists only for internal usage by the builders.
func (m *StudySessionMutation) SubjectIDs() (ids []int) {
	if id := m.subject; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetSubject resets all changes to the "subject" edge.
func (m *StudySessionMutation) ResetSubject() {
	m.subject = nil
	m.clearedsubject = false
}

// ClearChapter clears the "chapter" edge to the Chapter entity.
func (m *StudySessionMutation) ClearChapter() {
	m.clearedchapter = true
	m.clearedFields[studysession.FieldChapterID] = struct{}{}
}

// ChapterCleared reports if the "chapter" edge to the Chapter entity was cleared.
func (m *StudySessionMutation) ChapterCleared() bool {
	return m.ChapterIDCleared() || m.clearedchapter
}

// ChapterIDs returns the "chapter" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ChapterID instead. It exists only for internal usage by the builders.
func (m *StudySessionMutation) ChapterIDs() (ids []int) {
	if id := m.chapter; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetChapter resets all changes to the "chapter" edge.
func (m *StudySessionMutation) ResetChapter() {
	m.chapter = nil
	m.clearedchapter = false
}

// Where appends a list predicates to the StudySessionMutation builder.
func (m *StudySessionMutation) Where(ps ...predicate.StudySession) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the StudySessionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *StudySessionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.StudySession, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *StudySessionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *StudySessionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (StudySession).
func (m *StudySessionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *StudySessionMutation) Fields() []string {
	fields := make([]string, 0, 17)
	if m.user_id != nil {
		fields = append(fields, studysession.FieldUserID)
	}
	if m.session_start != nil {
		fields = append(fields, studysession.FieldSessionStart)
	}
	if m.session_end != nil {
		fields = append(fields, studysession.FieldSessionEnd)
	}
	if m.duration_minutes != nil {
		fields = append(fields, studysession.FieldDurationMinutes)
	}
	if m.activities != nil {
		fields = append(fields, studysession.FieldActivities)
	}
	if m.concepts_studied != nil {
		fields = append(fields, studysession.FieldConceptsStudied)
	}
	if m.difficulty_adjustments != nil {
		fields = append(fields, studysession.FieldDifficultyAdjustments)
	}
	if m.completion_progress != nil {
		fields = append(fields, studysession.FieldCompletionProgress)
	}
	if m.questions_asked != nil {
		fields = append(fields, studysession.FieldQuestionsAsked)
	}
	if m.bookmarks_created != nil {
		fields = append(fields, studysession.FieldBookmarksCreated)
	}
	if m.quizzes_completed != nil {
		fields = append(fields, studysession.FieldQuizzesCompleted)
	}
	if m.engagement_score != nil {
		fields = append(fields, studysession.FieldEngagementScore)
	}
	if m.focus_score != nil {
		fields = append(fields, studysession.FieldFocusScore)
	}
	if m.learning_effectiveness != nil {
		fields = append(fields, studysession.FieldLearningEffectiveness)
	}
	if m.course != nil {
		fields = append(fields, studysession.FieldCourseID)
	}
	if m.subject != nil {
		fields = append(fields, studysession.FieldSubjectID)
	}
	if m.chapter != nil {
		fields = append(fields, studysession.FieldChapterID)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *StudySessionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case studysession.FieldUserID:
		return m.UserID()
	case studysession.FieldSessionStart:
		return m.SessionStart()
	case studysession.FieldSessionEnd:
		return m.SessionEnd()
	case studysession.FieldDurationMinutes:
		return m.DurationMinutes()
	case studysession.FieldActivities:
		return m.Activities()
	case studysession.FieldConceptsStudied:
		return m.ConceptsStudied()
	case studysession.FieldDifficultyAdjustments:
		return m.DifficultyAdjustments()
	case studysession.FieldCompletionProgress:
		return m.CompletionProgress()
	case studysession.FieldQuestionsAsked:
		return m.QuestionsAsked()
	case studysession.FieldBookmarksCreated:
		return m.BookmarksCreated()
	case studysession.FieldQuizzesCompleted:
		return m.QuizzesCompleted()
	case studysession.FieldEngagementScore:
		return m.EngagementScore()
	case studysession.FieldFocusScore:
		return m.FocusScore()
	case studysession.FieldLearningEffectiveness:
		return m.LearningEffectiveness()
	case studysession.FieldCourseID:
		return m.CourseID()
	case studysession.FieldSubjectID:
		return m.SubjectID()
	case studysession.FieldChapterID:
		return m.ChapterID()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *StudySessionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case studysession.FieldUserID:
		return m.OldUserID(ctx)
	case studysession.FieldSessionStart:
		return m.OldSessionStart(ctx)
	case studysession.FieldSessionEnd:
		return m.OldSessionEnd(ctx)
	case studysession.FieldDurationMinutes:
		return m.OldDurationMinutes(ctx)
	case studysession.FieldActivities:
		return m.OldActivities(ctx)
	case studysession.FieldConceptsStudied:
		return m.OldConceptsStudied(ctx)
	case studysession.FieldDifficultyAdjustments:
		return m.OldDifficultyAdjustments(ctx)
	case studysession.FieldCompletionProgress:
		return m.OldCompletionProgress(ctx)
	case studysession.FieldQuestionsAsked:
		return m.OldQuestionsAsked(ctx)
	case studysession.FieldBookmarksCreated:
		return m.OldBookmarksCreated(ctx)
	case studysession.FieldQuizzesCompleted:
		return m.OldQuizzesCompleted(ctx)
	case studysession.FieldEngagementScore:
		return m.OldEngagementScore(ctx)
	case studysession.FieldFocusScore:
		return m.OldFocusScore(ctx)
	case studysession.FieldLearningEffectiveness:
		return m.OldLearningEffectiveness(ctx)
	case studysession.FieldCourseID:
		return m.OldCourseID(ctx)
	case studysession.FieldSubjectID:
		return m.OldSubjectID(ctx)
	case studysession.FieldChapterID:
		return m.OldChapterID(ctx)
	}
	return nil, fmt.Errorf("unknown StudySession field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *StudySessionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case studysession.FieldUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case studysession.FieldSessionStart:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionStart(v)
		return nil
	case studysession.FieldSessionEnd:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionEnd(v)
		return nil
	case studysession.FieldDurationMinutes:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDurationMinutes(v)
		return nil
	case studysession.FieldActivities:
		v, ok := value.([]schema.Activity)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetActivities(v)
		return nil
	case studysession.FieldConceptsStudied:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConceptsStudied(v)
		return nil
	case studysession.FieldDifficultyAdjustments:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDifficultyAdjustments(v)
		return nil
	case studysession.FieldCompletionProgress:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletionProgress(v)
		return nil
	case studysession.FieldQuestionsAsked:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQuestionsAsked(v)
		return nil
	case studysession.FieldBookmarksCreated:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBookmarksCreated(v)
		return nil
	case studysession.FieldQuizzesCompleted:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQuizzesCompleted(v)
		return nil
	case studysession.FieldEngagementScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEngagementScore(v)
		return nil
	case studysession.FieldFocusScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFocusScore(v)
		return nil
	case studysession.FieldLearningEffectiveness:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLearningEffectiveness(v)
		return nil
	case studysession.FieldCourseID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCourseID(v)
		return nil
	case studysession.FieldSubjectID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSubjectID(v)
		return nil
	case studysession.FieldChapterID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetChapterID(v)
		return nil
	}
	return fmt.Errorf("unknown StudySession field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *StudySessionMutation) AddedFields() []string {
	var fields []string
	if m.addduration_minutes != nil {
		fields = append(fields, studysession.FieldDurationMinutes)
	}
	if m.adddifficulty_adjustments != nil {
		fields = append(fields, studysession.FieldDifficultyAdjustments)
	}
	if m.addcompletion_progress != nil {
		fields = append(fields, studysession.FieldCompletionProgress)
	}
	if m.addquestions_asked != nil {
		fields = append(fields, studysession.FieldQuestionsAsked)
	}
	if m.addbookmarks_created != nil {
		fields = append(fields, studysession.FieldBookmarksCreated)
	}
	if m.addquizzes_completed != nil {
		fields = append(fields, studysession.FieldQuizzesCompleted)
	}
	if m.addengagement_score != nil {
		fields = append(fields, studysession.FieldEngagementScore)
	}
	if m.addfocus_score != nil {
		fields = append(fields, studysession.FieldFocusScore)
	}
	if m.addlearning_effectiveness != nil {
		fields = append(fields, studysession.FieldLearningEffectiveness)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *StudySessionMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case studysession.FieldDurationMinutes:
		return m.AddedDurationMinutes()
	case studysession.FieldDifficultyAdjustments:
		return m.AddedDifficultyAdjustments()
	case studysession.FieldCompletionProgress:
		return m.AddedCompletionProgress()
	case studysession.FieldQuestionsAsked:
		return m.AddedQuestionsAsked()
	case studysession.FieldBookmarksCreated:
		return m.AddedBookmarksCreated()
	case studysession.FieldQuizzesCompleted:
		return m.AddedQuizzesCompleted()
	case studysession.FieldEngagementScore:
		return m.AddedEngagementScore()
	case studysession.FieldFocusScore:
		return m.AddedFocusScore()
	case studysession.FieldLearningEffectiveness:
		return m.AddedLearningEffectiveness()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *StudySessionMutation) AddField(name string, value ent.Value) error {
	switch name {
	case studysession.FieldDurationMinutes:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDurationMinutes(v)
		return nil
	case studysession.FieldDifficultyAdjustments:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDifficultyAdjustments(v)
		return nil
	case studysession.FieldCompletionProgress:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCompletionProgress(v)
		return nil
	case studysession.FieldQuestionsAsked:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddQuestionsAsked(v)
		return nil
	case studysession.FieldBookmarksCreated:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddBookmarksCreated(v)
		return nil
	case studysession.FieldQuizzesCompleted:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddQuizzesCompleted(v)
		return nil
	case studysession.FieldEngagementScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddEngagementScore(v)
		return nil
	case studysession.FieldFocusScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddFocusScore(v)
		return nil
	case studysession.FieldLearningEffectiveness:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddLearningEffectiveness(v)
		return nil
	}
	return fmt.Errorf("unknown StudySession numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *StudySessionMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(studysession.FieldSessionEnd) {
		fields = append(fields, studysession.FieldSessionEnd)
	}
	if m.FieldCleared(studysession.FieldDurationMinutes) {
		fields = append(fields, studysession.FieldDurationMinutes)
	}
	if m.FieldCleared(studysession.FieldActivities) {
		fields = append(fields, studysession.FieldActivities)
	}
	if m.FieldCleared(studysession.FieldConceptsStudied) {
		fields = append(fields, studysession.FieldConceptsStudied)
	}
	if m.FieldCleared(studysession.FieldCourseID) {
		fields = append(fields, studysession.FieldCourseID)
	}
	if m.FieldCleared(studysession.FieldSubjectID) {
		fields = append(fields, studysession.FieldSubjectID)
	}
	if m.FieldCleared(studysession.FieldChapterID) {
		fields = append(fields, studysession.FieldChapterID)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *StudySessionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *StudySessionMutation) ClearField(name string) error {
	switch name {
	case studysession.FieldSessionEnd:
		m.ClearSessionEnd()
		return nil
	case studysession.FieldDurationMinutes:
		m.ClearDurationMinutes()
		return nil
	case studysession.FieldActivities:
		m.ClearActivities()
		return nil
	case studysession.FieldConceptsStudied:
		m.ClearConceptsStudied()
		return nil
	case studysession.FieldCourseID:
		m.ClearCourseID()
		return nil
	case studysession.FieldSubjectID:
		m.ClearSubjectID()
		return nil
	case studysession.FieldChapterID:
		m.ClearChapterID()
		return nil
	}
	return fmt.Errorf("unknown StudySession nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *StudySessionMutation) ResetField(name string) error {
	switch name {
	case studysession.FieldUserID:
		m.ResetUserID()
		return nil
	case studysession.FieldSessionStart:
		m.ResetSessionStart()
		return nil
	case studysession.FieldSessionEnd:
		m.ResetSessionEnd()
		return nil
	case studysession.FieldDurationMinutes:
		m.ResetDurationMinutes()
		return nil
	case studysession.FieldActivities:
		m.ResetActivities()
		return nil
	case studysession.FieldConceptsStudied:
		m.ResetConceptsStudied()
		return nil
	case studysession.FieldDifficultyAdjustments:
		m.ResetDifficultyAdjustments()
		return nil
	case studysession.FieldCompletionProgress:
		m.ResetCompletionProgress()
		return nil
	case studysession.FieldQuestionsAsked:
		m.ResetQuestionsAsked()
		return nil
	case studysession.FieldBookmarksCreated:
		m.ResetBookmarksCreated()
		return nil
	case studysession.FieldQuizzesCompleted:
		m.ResetQuizzesCompleted()
		return nil
	case studysession.FieldEngagementScore:
		m.ResetEngagementScore()
		return nil
	case studysession.FieldFocusScore:
		m.ResetFocusScore()
		return nil
	case studysession.FieldLearningEffectiveness:
		m.ResetLearningEffectiveness()
		return nil
	case studysession.FieldCourseID:
		m.ResetCourseID()
		return nil
	case studysession.FieldSubjectID:
		m.ResetSubjectID()
		return nil
	case studysession.FieldChapterID:
		m.ResetChapterID()
		return nil
	}
	return fmt.Errorf("unknown StudySession field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *StudySessionMutation) AddedEdges() []string {
	edges := make([]string, 0, 3)
	if m.course != nil {
		edges = append(edges, studysession.EdgeCourse)
	}
	if m.subject != nil {
		edges = append(edges, studysession.EdgeSubject)
	}
	if m.chapter != nil {
		edges = append(edges, studysession.EdgeChapter)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *StudySessionMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case studysession.EdgeCourse:
		if id := m.course; id != nil {
			return []ent.Value{*id}
		}
	case studysession.EdgeSubject:
		if id := m.subject; id != nil {
			return []ent.Value{*id}
		}
	case studysession.EdgeChapter:
		if id := m.chapter; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *StudySessionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 3)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *StudySessionMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *StudySessionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 3)
	if m.clearedcourse {
		edges = append(edges, studysession.EdgeCourse)
	}
	if m.clearedsubject {
		edges = append(edges, studysession.EdgeSubject)
	}
	if m.clearedchapter {
		edges = append(edges, studysession.EdgeChapter)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *StudySessionMutation) EdgeCleared(name string) bool {
	switch name {
	case studysession.EdgeCourse:
		return m.clearedcourse
	case studysession.EdgeSubject:
		return m.clearedsubject
	case studysession.EdgeChapter:
		return m.clearedchapter
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *StudySessionMutation) ClearEdge(name string) error {
	switch name {
	case studysession.EdgeCourse:
		m.ClearCourse()
		return nil
	case studysession.EdgeSubject:
		m.ClearSubject()
		return nil
	case studysession.EdgeChapter:
		m.ClearChapter()
		return nil
	}
	return fmt.Errorf("unknown StudySession unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *StudySessionMutation) ResetEdge(name string) error {
	switch name {
	case studysession.EdgeCourse:
		m.ResetCourse()
		return nil
	case studysession.EdgeSubject:
		m.ResetSubject()
		return nil
	case studysession.EdgeChapter:
		m.ResetChapter()
		return nil
	}
	return fmt.Errorf("unknown StudySession edge %s", name)
}

// SubjectMutation represents an operation that mutates the Subject nodes in the graph.
type SubjectMutation struct {
	config
	op                            Op
	typ                           string
	id                            *int
	created_at                    *time.Time
	updated_at                    *time.Time
	name                          *string
	preface                       *map[string]interface{}
	overall_summary               *map[string]interface{}
	subject_domain                *string
	learning_style                *string
	complexity_level              *string
	subject_analysis              *map[string]interface{}
	original_filename             *string
	file_size_mb                  *float64
	addfile_size_mb               *float64
	processing_time_seconds       *int
	addprocessing_time_seconds    *int
	total_chapters                *int
	addtotal_chapters             *int
	estimated_read_time           *int
	addestimated_read_time        *int
	interactive_elements_count    *int
	addinteractive_elements_count *int
	clearedFields                 map[string]struct{}
	course                        *int
	clearedcourse                 bool
	chapters                      map[int]struct{}
	removedchapters               map[int]struct{}
	clearedchapters               bool
	progress                      map[int]struct{}
	removedprogress               map[int]struct{}
	clearedprogress               bool
	study_sessions                map[int]struct{}
	removedstudy_sessions         map[int]struct{}
	clearedstudy_sessions         bool
	done                          bool
	oldValue                      func(context.Context) (*Subject, error)
	predicates                    []predicate.Subject
}

var _ ent.Mutation = (*SubjectMutation)(nil)

// subjectOption allows management of the mutation configuration using functional options.
type subjectOption func(*SubjectMutation)

// newSubjectMutation creates new mutation for the Subject entity.
func newSubjectMutation(c config, op Op, opts ...subjectOption) *SubjectMutation {
	m := &SubjectMutation{
		config:        c,
		op:            op,
		typ:           TypeSubject,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withSubjectID sets the ID field of the mutation.
func withSubjectID(id int) subjectOption {
	return func(m *SubjectMutation) {
		var (
			err   error
			once  sync.Once
			value *Subject
		)
		m.oldValue = func(ctx context.Context) (*Subject, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Subject.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withSubject sets the old Subject of the mutation.
func withSubject(node *Subject) subjectOption {
	return func(m *SubjectMutation) {
		m.oldValue = func(context.Context) (*Subject, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m SubjectMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m SubjectMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *SubjectMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *SubjectMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Subject.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *SubjectMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *SubjectMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Subject entity.
// If the Subject object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubjectMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *SubjectMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *SubjectMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *SubjectMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Subject entity.
// If the Subject object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubjectMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *SubjectMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetName sets the "name" field.
func (m *SubjectMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *SubjectMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Subject entity.
// If the Subject object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubjectMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *SubjectMutation) ResetName() {
	m.name = nil
}

// SetPreface sets the "preface" field.
func (m *SubjectMutation) SetPreface(value map[string]interface{}) {
	m.preface = &value
}

// Preface returns the value of the "preface" field in the mutation.
func (m *SubjectMutation) Preface() (r map[string]interface{}, exists bool) {
	v := m.preface
	if v == nil {
		return
	}
	return *v, true
}

// OldPreface returns the old "preface" field's value of the Subject entity.
// If the Subject object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubjectMutation) OldPreface(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPreface is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPreface requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPreface: %w", err)
	}
	return oldValue.Preface, nil
}

// ClearPreface clears the value of the "preface" field.
func (m *SubjectMutation) ClearPreface() {
	m.preface = nil
	m.clearedFields[subject.FieldPreface] = struct{}{}
}

// PrefaceCleared returns if the "preface" field was cleared in this mutation.
func (m *SubjectMutation) PrefaceCleared() bool {
	_, ok := m.clearedFields[subject.FieldPreface]
	return ok
}

// ResetPreface resets all changes to the "preface" field.
func (m *SubjectMutation) ResetPreface() {
	m.preface = nil
	delete(m.clearedFields, subject.FieldPreface)
}

// SetOverallSummary sets the "overall_summary" field.
func (m *SubjectMutation) SetOverallSummary(value map[string]interface{}) {
	m.overall_summary = &value
}

// OverallSummary returns the value of the "overall_summary" field in the mutation.
func (m *SubjectMutation) OverallSummary() (r map[string]interface{}, exists bool) {
	v := m.overall_summary
	if v == nil {
		return
	}
	return *v, true
}

// OldOverallSummary returns the old "overall_summary" field's value of the Subject entity.
// If the Subject object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubjectMutation) OldOverallSummary(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOverallSummary is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOverallSummary requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOverallSummary: %w", err)
	}
	return oldValue.OverallSummary, nil
}

// ClearOverallSummary clears the value of the "overall_summary" field.
func (m *SubjectMutation) ClearOverallSummary() {
	m.overall_summary = nil
	m.clearedFields[subject.FieldOverallSummary] = struct{}{}
}

// OverallSummaryCleared returns if the "overall_summary" field was cleared in this mutation.
func (m *SubjectMutation) OverallSummaryCleared() bool {
	_, ok := m.clearedFields[subject.FieldOverallSummary]
	return ok
}

// ResetOverallSummary resets all changes to the "overall_summary" field.
func (m *SubjectMutation) ResetOverallSummary() {
	m.overall_summary = nil
	delete(m.clearedFields, subject.FieldOverallSummary)
}

// SetSubjectDomain sets the "subject_domain" field.
func (m *SubjectMutation) SetSubjectDomain(s string) {
	m.subject_domain = &s
}

// SubjectDomain returns the value of the "subject_domain" field in the mutation.
func (m *SubjectMutation) SubjectDomain() (r string, exists bool) {
	v := m.subject_domain
	if v == nil {
		return
	}
	return *v, true
}

// OldSubjectDomain returns the old "subject_domain" field's value of the Subject entity.
// If the Subject object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubjectMutation) OldSubjectDomain(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSubjectDomain is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSubjectDomain requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSubjectDomain: %w", err)
	}
	return oldValue.SubjectDomain, nil
}

// ResetSubjectDomain resets all changes to the "subject_domain" field.
func (m *SubjectMutation) ResetSubjectDomain() {
	m.subject_domain = nil
}

// SetLearningStyle sets the "learning_style" field.
func (m *SubjectMutation) SetLearningStyle(s string) {
	m.learning_style = &s
}

// LearningStyle returns the value of the "learning_style" field in the mutation.
func (m *SubjectMutation) LearningStyle() (r string, exists bool) {
	v := m.learning_style
	if v == nil {
		return
	}
	return *v, true
}

// OldLearningStyle returns the old "learning_style" field's value of the Subject entity.
// If the Subject object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubjectMutation) OldLearningStyle(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLearningStyle is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLearningStyle requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLearningStyle: %w", err)
	}
	return oldValue.LearningStyle, nil
}

// ResetLearningStyle resets all changes to the "learning_style" field.
func (m *SubjectMutation) ResetLearningStyle() {
	m.learning_style = nil
}

// SetComplexityLevel sets the "complexity_level" field.
func (m *SubjectMutation) SetComplexityLevel(s string) {
	m.complexity_level = &s
}

// ComplexityLevel returns the value of the "complexity_level" field in the mutation.
func (m *SubjectMutation) ComplexityLevel() (r string, exists bool) {
	v := m.complexity_level
	if v == nil {
		return
	}
	return *v, true
}

// OldComplexityLevel returns the old "complexity_level" field's value of the Subject entity.
// If the Subject object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubjectMutation) OldComplexityLevel(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldComplexityLevel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldComplexityLevel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldComplexityLevel: %w", err)
	}
	return oldValue.ComplexityLevel, nil
}

// ResetComplexityLevel resets all changes to the "complexity_level" field.
func (m *SubjectMutation) ResetComplexityLevel() {
	m.complexity_level = nil
}

// SetSubjectAnalysis sets the "subject_analysis" field.
func (m *SubjectMutation) SetSubjectAnalysis(value map[string]interface{}) {
	m.subject_analysis = &value
}

// SubjectAnalysis returns the value of the "subject_analysis" field in the mutation.
func (m *SubjectMutation) SubjectAnalysis() (r map[string]interface{}, exists bool) {
	v := m.subject_analysis
	if v == nil {
		return
	}
	return *v, true
}

// OldSubjectAnalysis returns the old "subject_analysis" field's value of the Subject entity.
// If the Subject object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubjectMutation) OldSubjectAnalysis(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSubjectAnalysis is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSubjectAnalysis requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSubjectAnalysis: %w", err)
	}
	return oldValue.SubjectAnalysis, nil
}

// ClearSubjectAnalysis clears the value of the "subject_analysis" field.
func (m *SubjectMutation) ClearSubjectAnalysis() {
	m.subject_analysis = nil
	m.clearedFields[subject.FieldSubjectAnalysis] = struct{}{}
}

// SubjectAnalysisCleared returns if the "subject_analysis" field was cleared in this mutation.
func (m *SubjectMutation) SubjectAnalysisCleared() bool {
	_, ok := m.clearedFields[subject.FieldSubjectAnalysis]
	return ok
}

// ResetSubjectAnalysis resets all changes to the "subject_analysis" field.
func (m *SubjectMutation) ResetSubjectAnalysis() {
	m.subject_analysis = nil
	delete(m.clearedFields, subject.FieldSubjectAnalysis)
}

// SetOriginalFilename sets the "original_filename" field.
func (m *SubjectMutation) SetOriginalFilename(s string) {
	m.original_filename = &s
}

// OriginalFilename returns the value of the "original_filename" field in the mutation.
func (m *SubjectMutation) OriginalFilename() (r string, exists bool) {
	v := m.original_filename
	if v == nil {
		return
	}
	return *v, true
}

// OldOriginalFilename returns the old "original_filename" field's value of the Subject entity.
// If the Subject object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubjectMutation) OldOriginalFilename(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOriginalFilename is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOriginalFilename requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOriginalFilename: %w", err)
	}
	return oldValue.OriginalFilename, nil
}

// ClearOriginalFilename clears the value of the "original_filename" field.
func (m *SubjectMutation) ClearOriginalFilename() {
	m.original_filename = nil
	m.clearedFields[subject.FieldOriginalFilename] = struct{}{}
}

// OriginalFilenameCleared returns if the "original_filename" field was cleared in this mutation.
func (m *SubjectMutation) OriginalFilenameCleared() bool {
	_, ok := m.clearedFields[subject.FieldOriginalFilename]
	return ok
}

// ResetOriginalFilename resets all changes to the "original_filename" field.
func (m *SubjectMutation) ResetOriginalFilename() {
	m.original_filename = nil
	delete(m.clearedFields, subject.FieldOriginalFilename)
}

// SetFileSizeMB sets the "file_size_mb" field.
func (m *SubjectMutation) SetFileSizeMB(f float64) {
	m.file_size_mb = &f
	m.addfile_size_mb = nil
}

// FileSizeMB returns the value of the "file_size_mb" field in the mutation.
func (m *SubjectMutation) FileSizeMB() (r float64, exists bool) {
	v := m.file_size_mb
	if v == nil {
		return
	}
	return *v, true
}

// OldFileSizeMB returns the old "file_size_mb" field's value of the Subject entity.
// If the Subject object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubjectMutation) OldFileSizeMB(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFileSizeMB is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFileSizeMB requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFileSizeMB: %w", err)
	}
	return oldValue.FileSizeMB, nil
}

// AddFileSizeMB adds f to the "file_size_mb" field.
func (m *SubjectMutation) AddFileSizeMB(f float64) {
	if m.addfile_size_mb != nil {
		*m.addfile_size_mb += f
	} else {
		m.addfile_size_mb = &f
	}
}

// AddedFileSizeMB returns the value that was added to the "file_size_mb" field in this mutation.
func (m *SubjectMutation) AddedFileSizeMB() (r float64, exists bool) {
	v := m.addfile_size_mb
	if v == nil {
		return
	}
	return *v, true
}

// ClearFileSizeMB clears the value of the "file_size_mb" field.
func (m *SubjectMutation) ClearFileSizeMB() {
	m.file_size_mb = nil
	m.addfile_size_mb = nil
	m.clearedFields[subject.FieldFileSizeMB] = struct{}{}
}

// FileSizeMBCleared returns if the "file_size_mb" field was cleared in this mutation.
func (m *SubjectMutation) FileSizeMBCleared() bool {
	_, ok := m.clearedFields[subject.FieldFileSizeMB]
	return ok
}

// ResetFileSizeMB resets all changes to the "file_size_mb" field.
func (m *SubjectMutation) ResetFileSizeMB() {
	m.file_size_mb = nil
	m.addfile_size_mb = nil
	delete(m.clearedFields, subject.FieldFileSizeMB)
}

// SetProcessingTimeSeconds sets the "processing_time_seconds" field.
func (m *SubjectMutation) SetProcessingTimeSeconds(i int) {
	m.processing_time_seconds = &i
	m.addprocessing_time_seconds = nil
}

// ProcessingTimeSeconds returns the value of the "processing_time_seconds" field in the mutation.
func (m *SubjectMutation) ProcessingTimeSeconds() (r int, exists bool) {
	v := m.processing_time_seconds
	if v == nil {
		return
	}
	return *v, true
}

// OldProcessingTimeSeconds returns the old "processing_time_seconds" field's value of the Subject entity.
// If the Subject object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubjectMutation) OldProcessingTimeSeconds(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProcessingTimeSeconds is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProcessingTimeSeconds requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProcessingTimeSeconds: %w", err)
	}
	return oldValue.ProcessingTimeSeconds, nil
}

// AddProcessingTimeSeconds adds i to the "processing_time_seconds" field.
func (m *SubjectMutation) AddProcessingTimeSeconds(i int) {
	if m.addprocessing_time_seconds != nil {
		*m.addprocessing_time_seconds += i
	} else {
		m.addprocessing_time_seconds = &i
	}
}

// AddedProcessingTimeSeconds returns the value that was added to the "processing_time_seconds" field in this mutation.
func (m *SubjectMutation) AddedProcessingTimeSeconds() (r int, exists bool) {
	v := m.addprocessing_time_seconds
	if v == nil {
		return
	}
	return *v, true
}

// ClearProcessingTimeSeconds clears the value of the "processing_time_seconds" field.
func (m *SubjectMutation) ClearProcessingTimeSeconds() {
	m.processing_time_seconds = nil
	m.addprocessing_time_seconds = nil
	m.clearedFields[subject.FieldProcessingTimeSeconds] = struct{}{}
}

// ProcessingTimeSecondsCleared returns if the "processing_time_seconds" field was cleared in this mutation.
func (m *SubjectMutation) ProcessingTimeSecondsCleared() bool {
	_, ok := m.clearedFields[subject.FieldProcessingTimeSeconds]
	return ok
}

// ResetProcessingTimeSeconds resets all changes to the "processing_time_seconds" field.
func (m *SubjectMutation) ResetProcessingTimeSeconds() {
	m.processing_time_seconds = nil
	m.addprocessing_time_seconds = nil
	delete(m.clearedFields, subject.FieldProcessingTimeSeconds)
}

// SetTotalChapters sets the "total_chapters" field.
func (m *SubjectMutation) SetTotalChapters(i int) {
	m.total_chapters = &i
	m.addtotal_chapters = nil
}

// TotalChapters returns the value of the "total_chapters" field in the mutation.
func (m *SubjectMutation) TotalChapters() (r int, exists bool) {
	v := m.total_chapters
	if v == nil {
		return
	}
	return *v, true
}

// OldTotalChapters returns the old "total_chapters" field's value of the Subject entity.
// If the Subject object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubjectMutation) OldTotalChapters(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTotalChapters is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTotalChapters requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTotalChapters: %w", err)
	}
	return oldValue.TotalChapters, nil
}

// AddTotalChapters adds i to the "total_chapters" field.
func (m *SubjectMutation) AddTotalChapters(i int) {
	if m.addtotal_chapters != nil {
		*m.addtotal_chapters += i
	} else {
		m.addtotal_chapters = &i
	}
}

// AddedTotalChapters returns the value that was added to the "total_chapters" field in this mutation.
func (m *SubjectMutation) AddedTotalChapters() (r int, exists bool) {
	v := m.addtotal_chapters
	if v == nil {
		return
	}
	return *v, true
}

// ResetTotalChapters resets all changes to the "total_chapters" field.
func (m *SubjectMutation) ResetTotalChapters() {
	m.total_chapters = nil
	m.addtotal_chapters = nil
}

// SetEstimatedReadTime sets the "estimated_read_time" field.
func (m *SubjectMutation) SetEstimatedReadTime(i int) {
	m.estimated_read_time = &i
	m.addestimated_read_time = nil
}

// EstimatedReadTime returns the value of the "estimated_read_time" field in the mutation.
func (m *SubjectMutation) EstimatedReadTime() (r int, exists bool) {
	v := m.estimated_read_time
	if v == nil {
		return
	}
	return *v, true
}

// OldEstimatedReadTime returns the old "estimated_read_time" field's value of the Subject entity.
// If the Subject object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubjectMutation) OldEstimatedReadTime(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEstimatedReadTime is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEstimatedReadTime requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEstimatedReadTime: %w", err)
	}
	return oldValue.EstimatedReadTime, nil
}

// AddEstimatedReadTime adds i to the "estimated_read_time" field.
func (m *SubjectMutation) AddEstimatedReadTime(i int) {
	if m.addestimated_read_time != nil {
		*m.addestimated_read_time += i
	} else {
		m.addestimated_read_time = &i
	}
}

// AddedEstimatedReadTime returns the value that was added to the "estimated_read_time" field in this mutation.
func (m *SubjectMutation) AddedEstimatedReadTime() (r int, exists bool) {
	v := m.addestimated_read_time
	if v == nil {
		return
	}
	return *v, true
}

// ResetEstimatedReadTime resets all changes to the "estimated_read_time" field.
func (m *SubjectMutation) ResetEstimatedReadTime() {
	m.estimated_read_time = nil
	m.addestimated_read_time = nil
}

// SetInteractiveElementsCount sets the "interactive_elements_count" field.
func (m *SubjectMutation) SetInteractiveElementsCount(i int) {
	m.interactive_elements_count = &i
	m.addinteractive_elements_count = nil
}

// InteractiveElementsCount returns the value of the "interactive_elements_count" field in the mutation.
func (m *SubjectMutation) InteractiveElementsCount() (r int, exists bool) {
	v := m.interactive_elements_count
	if v == nil {
		return
	}
	return *v, true
}

// OldInteractiveElementsCount returns the old "interactive_elements_count" field's value of the Subject entity.
// If the Subject object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubjectMutation) OldInteractiveElementsCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInteractiveElementsCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInteractiveElementsCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInteractiveElementsCount: %w", err)
	}
	return oldValue.InteractiveElementsCount, nil
}

// AddInteractiveElementsCount adds i to the "interactive_elements_count" field.
func (m *SubjectMutation) AddInteractiveElementsCount(i int) {
	if m.addinteractive_elements_count != nil {
		*m.addinteractive_elements_count += i
	} else {
		m.addinteractive_elements_count = &i
	}
}

// AddedInteractiveElementsCount returns the value that was added to the "interactive_elements_count" field in this mutation.
func (m *SubjectMutation) AddedInteractiveElementsCount() (r int, exists bool) {
	v := m.addinteractive_elements_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetInteractiveElementsCount resets all changes to the "interactive_elements_count" field.
func (m *SubjectMutation) ResetInteractiveElementsCount() {
	m.interactive_elements_count = nil
	m.addinteractive_elements_count = nil
}

// SetCourseID sets the "course_id" field.
func (m *SubjectMutation) SetCourseID(i int) {
	m.course = &i
}

// CourseID returns the value of the "course_id" field in the mutation.
func (m *SubjectMutation) CourseID() (r int, exists bool) {
	v := m.course
	if v == nil {
		return
	}
	return *v, true
}

// OldCourseID returns the old "course_id" field's value of the Subject entity.
// If the Subject object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubjectMutation) OldCourseID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCourseID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCourseID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCourseID: %w", err)
	}
	return oldValue.CourseID, nil
}

// ResetCourseID resets all changes to the "course_id" field.
func (m *SubjectMutation) ResetCourseID() {
	m.course = nil
}

// ClearCourse clears the "course" edge to the Course entity.
func (m *SubjectMutation) ClearCourse() {
	m.clearedcourse = true
	m.clearedFields[subject.FieldCourseID] = struct{}{}
}

// CourseCleared reports if the "course" edge to the Course entity was cleared.
func (m *SubjectMutation) CourseCleared() bool {
	return m.clearedcourse
}

// CourseIDs returns the "course" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// CourseID instead. It exists only for internal usage by the builders.
func (m *SubjectMutation) CourseIDs() (ids []int) {
	if id := m.course; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetCourse resets all changes to the "course" edge.
func (m *SubjectMutation) ResetCourse() {
	m.course = nil
	m.clearedcourse = false
}

// AddChapterIDs adds the "chapters" edge to the Chapter entity by ids.
func (m *SubjectMutation) AddChapterIDs(ids ...int) {
	if m.chapters == nil {
		m.chapters = make(map[int]struct{})
	}
	for i := range ids {
		m.chapters[ids[i]] = struct{}{}
	}
}

// ClearChapters clears the "chapters" edge to the Chapter entity.
func (m *SubjectMutation) ClearChapters() {
	m.clearedchapters = true
}

// ChaptersCleared reports if the "chapters" edge to the Chapter entity was cleared.
func (m *SubjectMutation) ChaptersCleared() bool {
	return m.clearedchapters
}

// RemoveChapterIDs removes the "chapters" edge to the Chapter entity by IDs.
func (m *SubjectMutation) RemoveChapterIDs(ids ...int) {
	if m.removedchapters == nil {
		m.removedchapters = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.chapters, ids[i])
		m.removedchapters[ids[i]] = struct{}{}
	}
}

// RemovedChapters returns the removed IDs of the "chapters" edge to the Chapter entity.
func (m *SubjectMutation) RemovedChaptersIDs() (ids []int) {
	for id := range m.removedchapters {
		ids = append(ids, id)
	}
	return
}

// ChaptersIDs returns the "chapters" edge IDs in the mutation.
func (m *SubjectMutation) ChaptersIDs() (ids []int) {
	for id := range m.chapters {
		ids = append(ids, id)
	}
	return
}

// ResetChapters resets all changes to the "chapters" edge.
func (m *SubjectMutation) ResetChapters() {
	m.chapters = nil
	m.clearedchapters = false
	m.removedchapters = nil
}

// AddProgresIDs adds the "progress" edge to the UserProgress entity by ids.
func (m *SubjectMutation) AddProgresIDs(ids ...int) {
	if m.progress == nil {
		m.progress = make(map[int]struct{})
	}
	for i := range ids {
		m.progress[ids[i]] = struct{}{}
	}
}

// ClearProgress clears the "progress" edge to the UserProgress entity.
func (m *SubjectMutation) ClearProgress() {
	m.clearedprogress = true
}

// ProgressCleared reports if the "progress" edge to the UserProgress entity was cleared.
func (m *SubjectMutation) ProgressCleared() bool {
	return m.clearedprogress
}

// RemoveProgresIDs removes the "progress" edge to the UserProgress entity by IDs.
func (m *SubjectMutation) RemoveProgresIDs(ids ...int) {
	if m.removedprogress == nil {
		m.removedprogress = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.progress, ids[i])
		m.removedprogress[ids[i]] = struct{}{}
	}
}

// RemovedProgress returns the removed IDs of the "progress" edge to the UserProgress entity.
func (m *SubjectMutation) RemovedProgressIDs() (ids []int) {
	for id := range m.removedprogress {
		ids = append(ids, id)
	}
	return
}

// ProgressIDs returns the "progress" edge IDs in the mutation.
func (m *SubjectMutation) ProgressIDs() (ids []int) {
	for id := range m.progress {
		ids = append(ids, id)
	}
	return
}

// ResetProgress resets all changes to the "progress" edge.
func (m *SubjectMutation) ResetProgress() {
	m.progress = nil
	m.clearedprogress = false
	m.removedprogress = nil
}

// AddStudySessionIDs adds the "study_sessions" edge to the StudySession entity by ids.
func (m *SubjectMutation) AddStudySessionIDs(ids ...int) {
	if m.study_sessions == nil {
		m.study_sessions = make(map[int]struct{})
	}
	for i := range ids {
		m.study_sessions[ids[i]] = struct{}{}
	}
}

// ClearStudySessions clears the "study_sessions" edge to the StudySession entity.
func (m *SubjectMutation) ClearStudySessions() {
	m.clearedstudy_sessions = true
}

// StudySessionsCleared reports if the "study_sessions" edge to the StudySession entity was cleared.
func (m *SubjectMutation) StudySessionsCleared() bool {
	return m.clearedstudy_sessions
}

// RemoveStudySessionIDs removes the "study_sessions" edge to the StudySession entity by IDs.
func (m *SubjectMutation) RemoveStudySessionIDs(ids ...int) {
	if m.removedstudy_sessions == nil {
		m.removedstudy_sessions = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.study_sessions, ids[i])
		m.removedstudy_sessions[ids[i]] = struct{}{}
	}
}

// RemovedStudySessions returns the removed IDs of the "study_sessions" edge to the StudySession entity.
func (m *SubjectMutation) RemovedStudySessionsIDs() (ids []int) {
	for id := range m.removedstudy_sessions {
		ids = append(ids, id)
	}
	return
}

// StudySessionsIDs returns the "study_sessions" edge IDs in the mutation.
func (m *SubjectMutation) StudySessionsIDs() (ids []int) {
	for id := range m.study_sessions {
		ids = append(ids, id)
	}
	return
}

// ResetStudySessions resets all changes to the "study_sessions" edge.
func (m *SubjectMutation) ResetStudySessions() {
	m.study_sessions = nil
	m.clearedstudy_sessions = false
	m.removedstudy_sessions = nil
}

// Where appends a list predicates to the SubjectMutation builder.
func (m *SubjectMutation) Where(ps ...predicate.Subject) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the SubjectMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *SubjectMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Subject, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *SubjectMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *SubjectMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Subject).
func (m *SubjectMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *SubjectMutation) Fields() []string {
	fields := make([]string, 0, 16)
	if m.created_at != nil {
		fields = append(fields, subject.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, subject.FieldUpdatedAt)
	}
	if m.name != nil {
		fields = append(fields, subject.FieldName)
	}
	if m.preface != nil {
		fields = append(fields, subject.FieldPreface)
	}
	if m.overall_summary != nil {
		fields = append(fields, subject.FieldOverallSummary)
	}
	if m.subject_domain != nil {
		fields = append(fields, subject.FieldSubjectDomain)
	}
	if m.learning_style != nil {
		fields = append(fields, subject.FieldLearningStyle)
	}
	if m.complexity_level != nil {
		fields = append(fields, subject.FieldComplexityLevel)
	}
	if m.subject_analysis != nil {
		fields = append(fields, subject.FieldSubjectAnalysis)
	}
	if m.original_filename != nil {
		fields = append(fields, subject.FieldOriginalFilename)
	}
	if m.file_size_mb != nil {
		fields = append(fields, subject.FieldFileSizeMB)
	}
	if m.processing_time_seconds != nil {
		fields = append(fields, subject.FieldProcessingTimeSeconds)
	}
	if m.total_chapters != nil {
		fields = append(fields, subject.FieldTotalChapters)
	}
	if m.estimated_read_time != nil {
		fields = append(fields, subject.FieldEstimatedReadTime)
	}
	if m.interactive_elements_count != nil {
		fields = append(fields, subject.FieldInteractiveElementsCount)
	}
	if m.course != nil {
		fields = append(fields, subject.FieldCourseID)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *SubjectMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case subject.FieldCreatedAt:
		return m.CreatedAt()
	case subject.FieldUpdatedAt:
		return m.UpdatedAt()
	case subject.FieldName:
		return m.Name()
	case subject.FieldPreface:
		return m.Preface()
	case subject.FieldOverallSummary:
		return m.OverallSummary()
	case subject.FieldSubjectDomain:
		return m.SubjectDomain()
	case subject.FieldLearningStyle:
		return m.LearningStyle()
	case subject.FieldComplexityLevel:
		return m.ComplexityLevel()
	case subject.FieldSubjectAnalysis:
		return m.SubjectAnalysis()
	case subject.FieldOriginalFilename:
		return m.OriginalFilename()
	case subject.FieldFileSizeMB:
		return m.FileSizeMB()
	case subject.FieldProcessingTimeSeconds:
		return m.ProcessingTimeSeconds()
	case subject.FieldTotalChapters:
		return m.TotalChapters()
	case subject.FieldEstimatedReadTime:
		return m.EstimatedReadTime()
	case subject.FieldInteractiveElementsCount:
		return m.InteractiveElementsCount()
	case subject.FieldCourseID:
		return m.CourseID()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *SubjectMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case subject.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case subject.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case subject.FieldName:
		return m.OldName(ctx)
	case subject.FieldPreface:
		return m.OldPreface(ctx)
	case subject.FieldOverallSummary:
		return m.OldOverallSummary(ctx)
	case subject.FieldSubjectDomain:
		return m.OldSubjectDomain(ctx)
	case subject.FieldLearningStyle:
		return m.OldLearningStyle(ctx)
	case subject.FieldComplexityLevel:
		return m.OldComplexityLevel(ctx)
	case subject.FieldSubjectAnalysis:
		return m.OldSubjectAnalysis(ctx)
	case subject.FieldOriginalFilename:
		return m.OldOriginalFilename(ctx)
	case subject.FieldFileSizeMB:
		return m.OldFileSizeMB(ctx)
	case subject.FieldProcessingTimeSeconds:
		return m.OldProcessingTimeSeconds(ctx)
	case subject.FieldTotalChapters:
		return m.OldTotalChapters(ctx)
	case subject.FieldEstimatedReadTime:
		return m.OldEstimatedReadTime(ctx)
	case subject.FieldInteractiveElementsCount:
		return m.OldInteractiveElementsCount(ctx)
	case subject.FieldCourseID:
		return m.OldCourseID(ctx)
	}
	return nil, fmt.Errorf("unknown Subject field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SubjectMutation) SetField(name string, value ent.Value) error {
	switch name {
	case subject.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case subject.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case subject.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case subject.FieldPreface:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPreface(v)
		return nil
	case subject.FieldOverallSummary:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOverallSummary(v)
		return nil
	case subject.FieldSubjectDomain:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSubjectDomain(v)
		return nil
	case subject.FieldLearningStyle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLearningStyle(v)
		return nil
	case subject.FieldComplexityLevel:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetComplexityLevel(v)
		return nil
	case subject.FieldSubjectAnalysis:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSubjectAnalysis(v)
		return nil
	case subject.FieldOriginalFilename:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOriginalFilename(v)
		return nil
	case subject.FieldFileSizeMB:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFileSizeMB(v)
		return nil
	case subject.FieldProcessingTimeSeconds:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProcessingTimeSeconds(v)
		return nil
	case subject.FieldTotalChapters:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTotalChapters(v)
		return nil
	case subject.FieldEstimatedReadTime:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEstimatedReadTime(v)
		return nil
	case subject.FieldInteractiveElementsCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInteractiveElementsCount(v)
		return nil
	case subject.FieldCourseID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCourseID(v)
		return nil
	}
	return fmt.Errorf("unknown Subject field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *SubjectMutation) AddedFields() []string {
	var fields []string
	if m.addfile_size_mb != nil {
		fields = append(fields, subject.FieldFileSizeMB)
	}
	if m.addprocessing_time_seconds != nil {
		fields = append(fields, subject.FieldProcessingTimeSeconds)
	}
	if m.addtotal_chapters != nil {
		fields = append(fields, subject.FieldTotalChapters)
	}
	if m.addestimated_read_time != nil {
		fields = append(fields, subject.FieldEstimatedReadTime)
	}
	if m.addinteractive_elements_count != nil {
		fields = append(fields, subject.FieldInteractiveElementsCount)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *SubjectMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case subject.FieldFileSizeMB:
		return m.AddedFileSizeMB()
	case subject.FieldProcessingTimeSeconds:
		return m.AddedProcessingTimeSeconds()
	case subject.FieldTotalChapters:
		return m.AddedTotalChapters()
	case subject.FieldEstimatedReadTime:
		return m.AddedEstimatedReadTime()
	case subject.FieldInteractiveElementsCount:
		return m.AddedInteractiveElementsCount()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SubjectMutation) AddField(name string, value ent.Value) error {
	switch name {
	case subject.FieldFileSizeMB:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddFileSizeMB(v)
		return nil
	case subject.FieldProcessingTimeSeconds:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddProcessingTimeSeconds(v)
		return nil
	case subject.FieldTotalChapters:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTotalChapters(v)
		return nil
	case subject.FieldEstimatedReadTime:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddEstimatedReadTime(v)
		return nil
	case subject.FieldInteractiveElementsCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddInteractiveElementsCount(v)
		return nil
	}
	return fmt.Errorf("unknown Subject numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *SubjectMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(subject.FieldPreface) {
		fields = append(fields, subject.FieldPreface)
	}
	if m.FieldCleared(subject.FieldOverallSummary) {
		fields = append(fields, subject.FieldOverallSummary)
	}
	if m.FieldCleared(subject.FieldSubjectAnalysis) {
		fields = append(fields, subject.FieldSubjectAnalysis)
	}
	if m.FieldCleared(subject.FieldOriginalFilename) {
		fields = append(fields, subject.FieldOriginalFilename)
	}
	if m.FieldCleared(subject.FieldFileSizeMB) {
		fields = append(fields, subject.FieldFileSizeMB)
	}
	if m.FieldCleared(subject.FieldProcessingTimeSeconds) {
		fields = append(fields, subject.FieldProcessingTimeSeconds)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *SubjectMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *SubjectMutation) ClearField(name string) error {
	switch name {
	case subject.FieldPreface:
		m.ClearPreface()
		return nil
	case subject.FieldOverallSummary:
		m.ClearOverallSummary()
		return nil
	case subject.FieldSubjectAnalysis:
		m.ClearSubjectAnalysis()
		return nil
	case subject.FieldOriginalFilename:
		m.ClearOriginalFilename()
		return nil
	case subject.FieldFileSizeMB:
		m.ClearFileSizeMB()
		return nil
	case subject.FieldProcessingTimeSeconds:
		m.ClearProcessingTimeSeconds()
		return nil
	}
	return fmt.Errorf("unknown Subject nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *SubjectMutation) ResetField(name string) error {
	switch name {
	case subject.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case subject.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case subject.FieldName:
		m.ResetName()
		return nil
	case subject.FieldPreface:
		m.ResetPreface()
		return nil
	case subject.FieldOverallSummary:
		m.ResetOverallSummary()
		return nil
	case subject.FieldSubjectDomain:
		m.ResetSubjectDomain()
		return nil
	case subject.FieldLearningStyle:
		m.ResetLearningStyle()
		return nil
	case subject.FieldComplexityLevel:
		m.ResetComplexityLevel()
		return nil
	case subject.FieldSubjectAnalysis:
		m.ResetSubjectAnalysis()
		return nil
	case subject.FieldOriginalFilename:
		m.ResetOriginalFilename()
		return nil
	case subject.FieldFileSizeMB:
		m.ResetFileSizeMB()
		return nil
	case subject.FieldProcessingTimeSeconds:
		m.ResetProcessingTimeSeconds()
		return nil
	case subject.FieldTotalChapters:
		m.ResetTotalChapters()
		return nil
	case subject.FieldEstimatedReadTime:
		m.ResetEstimatedReadTime()
		return nil
	case subject.FieldInteractiveElementsCount:
		m.ResetInteractiveElementsCount()
		return nil
	case subject.FieldCourseID:
		m.ResetCourseID()
		return nil
	}
	return fmt.Errorf("unknown Subject field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *SubjectMutation) AddedEdges() []string {
	edges := make([]string, 0, 4)
	if m.course != nil {
		edges = append(edges, subject.EdgeCourse)
	}
	if m.chapters != nil {
		edges = append(edges, subject.EdgeChapters)
	}
	if m.progress != nil {
		edges = append(edges, subject.EdgeProgress)
	}
	if m.study_sessions != nil {
		edges = append(edges, subject.EdgeStudySessions)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *SubjectMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case subject.EdgeCourse:
		if id := m.course; id != nil {
			return []ent.Value{*id}
		}
	case subject.EdgeChapters:
		ids := make([]ent.Value, 0, len(m.chapters))
		for id := range m.chapters {
			ids = append(ids, id)
		}
		return ids
	case subject.EdgeProgress:
		ids := make([]ent.Value, 0, len(m.progress))
		for id := range m.progress {
			ids = append(ids, id)
		}
		return ids
	case subject.EdgeStudySessions:
		ids := make([]ent.Value, 0, len(m.study_sessions))
		for id := range m.study_sessions {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *SubjectMutation) RemovedEdges() []string {
	edges := make([]string, 0, 4)
	if m.removedchapters != nil {
		edges = append(edges, subject.EdgeChapters)
	}
	if m.removedprogress != nil {
		edges = append(edges, subject.EdgeProgress)
	}
	if m.removedstudy_sessions != nil {
		edges = append(edges, subject.EdgeStudySessions)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *SubjectMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case subject.EdgeChapters:
		ids := make([]ent.Value, 0, len(m.removedchapters))
		for id := range m.removedchapters {
			ids = append(ids, id)
		}
		return ids
	case subject.EdgeProgress:
		ids := make([]ent.Value, 0, len(m.removedprogress))
		for id := range m.removedprogress {
			ids = append(ids, id)
		}
		return ids
	case subject.EdgeStudySessions:
		ids := make([]ent.Value, 0, len(m.removedstudy_sessions))
		for id := range m.removedstudy_sessions {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *SubjectMutation) ClearedEdges() []string {
	edges := make([]string, 0, 4)
	if m.clearedcourse {
		edges = append(edges, subject.EdgeCourse)
	}
	if m.clearedchapters {
		edges = append(edges, subject.EdgeChapters)
	}
	if m.clearedprogress {
		edges = append(edges, subject.EdgeProgress)
	}
	if m.clearedstudy_sessions {
		edges = append(edges, subject.EdgeStudySessions)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *SubjectMutation) EdgeCleared(name string) bool {
	switch name {
	case subject.EdgeCourse:
		return m.clearedcourse
	case subject.EdgeChapters:
		return m.clearedchapters
	case subject.EdgeProgress:
		return m.clearedprogress
	case subject.EdgeStudySessions:
		return m.clearedstudy_sessions
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *SubjectMutation) ClearEdge(name string) error {
	switch name {
	case subject.EdgeCourse:
		m.ClearCourse()
		return nil
	}
	return fmt.Errorf("unknown Subject unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *SubjectMutation) ResetEdge(name string) error {
	switch name {
	case subject.EdgeCourse:
		m.ResetCourse()
		return nil
	case subject.EdgeChapters:
		m.ResetChapters()
		return nil
	case subject.EdgeProgress:
		m.ResetProgress()
		return nil
	case subject.EdgeStudySessions:
		m.ResetStudySessions()
		return nil
	}
	return fmt.Errorf("unknown Subject edge %s", name)
}

// UserProgressMutation represents an operation that mutates the UserProgress nodes in the graph.
type UserProgressMutation struct {
	config
	op                       Op
	typ                      string
	id                       *int
	user_id                  *string
	status                   *string
	completion_percentage    *float64
	addcompletion_percentage *float64
	mastery_level            *string
	time_spent_minutes       *int
	addtime_spent_minutes    *int
	sessions_count           *int
	addsessions_count        *int
	last_accessed            *time.Time
	completed_at             *time.Time
	questions_asked          *int
	addquestions_asked       *int
	concepts_bookmarked      *int
	addconcepts_bookmarked   *int
	quizzes_taken            *int
	addquizzes_taken         *int
	avg_quiz_score           *float64
	addavg_quiz_score        *float64
	difficulty_preference    *string
	learning_velocity        *float64
	addlearning_velocity     *float64
	struggle_areas           *[]string
	appendstruggle_areas     []string
	clearedFields            map[string]struct{}
	subject                  *int
	clearedsubject           bool
	chapter                  *int
	clearedchapter           bool
	done                     bool
	oldValue                 func(context.Context) (*UserProgress, error)
	predicates               []predicate.UserProgress
}

var _ ent.Mutation = (*UserProgressMutation)(nil)

// userprogressOption allows management of the mutation configuration using functional options.
type userprogressOption func(*UserProgressMutation)

// newUserProgressMutation creates new mutation for the UserProgress entity.
func newUserProgressMutation(c config, op Op, opts ...userprogressOption) *UserProgressMutation {
	m := &UserProgressMutation{
		config:        c,
		op:            op,
		typ:           TypeUserProgress,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withUserProgressID sets the ID field of the mutation.
func withUserProgressID(id int) userprogressOption {
	return func(m *UserProgressMutation) {
		var (
			err   error
			once  sync.Once
			value *UserProgress
		)
		m.oldValue = func(ctx context.Context) (*UserProgress, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().UserProgress.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withUserProgress sets the old UserProgress of the mutation.
func withUserProgress(node *UserProgress) userprogressOption {
	return func(m *UserProgressMutation) {
		m.oldValue = func(context.Context) (*UserProgress, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m UserProgressMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m UserProgressMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *UserProgressMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *UserProgressMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().UserProgress.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetUserID sets the "user_id" field.
func (m *UserProgressMutation) SetUserID(s string) {
	m.user_id = &s
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *UserProgressMutation) UserID() (r string, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the UserProgress entity.
// If the UserProgress object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserProgressMutation) OldUserID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *UserProgressMutation) ResetUserID() {
	m.user_id = nil
}

// SetStatus sets the "status" field.
func (m *UserProgressMutation) SetStatus(s string) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *UserProgressMutation) Status() (r string, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the UserProgress entity.
// If the UserProgress object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserProgressMutation) OldStatus(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *UserProgressMutation) ResetStatus() {
	m.status = nil
}

// SetCompletionPercentage sets the "completion_percentage" field.
func (m *UserProgressMutation) SetCompletionPercentage(f float64) {
	m.completion_percentage = &f
	m.addcompletion_percentage = nil
}

// CompletionPercentage returns the value of the "completion_percentage" field in the mutation.
func (m *UserProgressMutation) CompletionPercentage() (r float64, exists bool) {
	v := m.completion_percentage
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletionPercentage returns the old "completion_percentage" field's value of the UserProgress entity.
// If the UserProgress object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserProgressMutation) OldCompletionPercentage(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletionPercentage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletionPercentage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletionPercentage: %w", err)
	}
	return oldValue.CompletionPercentage, nil
}

// AddCompletionPercentage adds f to the "completion_percentage" field.
func (m *UserProgressMutation) AddCompletionPercentage(f float64) {
	if m.addcompletion_percentage != nil {
		*m.addcompletion_percentage += f
	} else {
		m.addcompletion_percentage = &f
	}
}

// AddedCompletionPercentage returns the value that was added to the "completion_percentage" field in this mutation.
func (m *UserProgressMutation) AddedCompletionPercentage() (r float64, exists bool) {
	v := m.addcompletion_percentage
	if v == nil {
		return
	}
	return *v, true
}

// ResetCompletionPercentage resets all changes to the "completion_percentage" field.
func (m *UserProgressMutation) ResetCompletionPercentage() {
	m.completion_percentage = nil
	m.addcompletion_percentage = nil
}

// SetMasteryLevel sets the "mastery_level" field.
func (m *UserProgressMutation) SetMasteryLevel(s string) {
	m.mastery_level = &s
}

// MasteryLevel returns the value of the "mastery_level" field in the mutation.
func (m *UserProgressMutation) MasteryLevel() (r string, exists bool) {
	v := m.mastery_level
	if v == nil {
		return
	}
	return *v, true
}

// OldMasteryLevel returns the old "mastery_level" field's value of the UserProgress entity.
// If the UserProgress object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserProgressMutation) OldMasteryLevel(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMasteryLevel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMasteryLevel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMasteryLevel: %w", err)
	}
	return oldValue.MasteryLevel, nil
}

// ResetMasteryLevel resets all changes to the "mastery_level" field.
func (m *UserProgressMutation) ResetMasteryLevel() {
	m.mastery_level = nil
}

// SetTimeSpentMinutes sets the "time_spent_minutes" field.
func (m *UserProgressMutation) SetTimeSpentMinutes(i int) {
	m.time_spent_minutes = &i
	m.addtime_spent_minutes = nil
}

// TimeSpentMinutes returns the value of the "time_spent_minutes" field in the mutation.
func (m *UserProgressMutation) TimeSpentMinutes() (r int, exists bool) {
	v := m.time_spent_minutes
	if v == nil {
		return
	}
	return *v, true
}

// OldTimeSpentMinutes returns the old "time_spent_minutes" field's value of the UserProgress entity.
// If the UserProgress object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserProgressMutation) OldTimeSpentMinutes(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimeSpentMinutes is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimeSpentMinutes requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimeSpentMinutes: %w", err)
	}
	return oldValue.TimeSpentMinutes, nil
}

// AddTimeSpentMinutes adds i to the "time_spent_minutes" field.
func (m *UserProgressMutation) AddTimeSpentMinutes(i int) {
	if m.addtime_spent_minutes != nil {
		*m.addtime_spent_minutes += i
	} else {
		m.addtime_spent_minutes = &i
	}
}

// AddedTimeSpentMinutes returns the value that was added to the "time_spent_minutes" field in this mutation.
func (m *UserProgressMutation) AddedTimeSpentMinutes() (r int, exists bool) {
	v := m.addtime_spent_minutes
	if v == nil {
		return
	}
	return *v, true
}

// ResetTimeSpentMinutes resets all changes to the "time_spent_minutes" field.
func (m *UserProgressMutation) ResetTimeSpentMinutes() {
	m.time_spent_minutes = nil
	m.addtime_spent_minutes = nil
}

// SetSessionsCount sets the "sessions_count" field.
func (m *UserProgressMutation) SetSessionsCount(i int) {
	m.sessions_count = &i
	m.addsessions_count = nil
}

// SessionsCount returns the value of the "sessions_count" field in the mutation.
func (m *UserProgressMutation) SessionsCount() (r int, exists bool) {
	v := m.sessions_count
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionsCount returns the old "sessions_count" field's value of the UserProgress entity.
// If the UserProgress object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserProgressMutation) OldSessionsCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionsCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionsCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionsCount: %w", err)
	}
	return oldValue.SessionsCount, nil
}

// AddSessionsCount adds i to the "sessions_count" field.
func (m *UserProgressMutation) AddSessionsCount(i int) {
	if m.addsessions_count != nil {
		*m.addsessions_count += i
	} else {
		m.addsessions_count = &i
	}
}

// AddedSessionsCount returns the value that was added to the "sessions_count" field in this mutation.
func (m *UserProgressMutation) AddedSessionsCount() (r int, exists bool) {
	v := m.addsessions_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetSessionsCount resets all changes to the "sessions_count" field.
func (m *UserProgressMutation) ResetSessionsCount() {
	m.sessions_count = nil
	m.addsessions_count = nil
}

// SetLastAccessed sets the "last_accessed" field.
func (m *UserProgressMutation) SetLastAccessed(t time.Time) {
	m.last_accessed = &t
}

// LastAccessed returns the value of the "last_accessed" field in the mutation.
func (m *UserProgressMutation) LastAccessed() (r time.Time, exists bool) {
	v := m.last_accessed
	if v == nil {
		return
	}
	return *v, true
}

// OldLastAccessed returns the old "last_accessed" field's value of the UserProgress entity.
// If the UserProgress object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserProgressMutation) OldLastAccessed(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastAccessed is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastAccessed requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastAccessed: %w", err)
	}
	return oldValue.LastAccessed, nil
}

// ResetLastAccessed resets all changes to the "last_accessed" field.
func (m *UserProgressMutation) ResetLastAccessed() {
	m.last_accessed = nil
}

// SetCompletedAt sets the "completed_at" field.
func (m *UserProgressMutation) SetCompletedAt(t time.Time) {
	m.completed_at = &t
}

// CompletedAt returns the value of the "completed_at" field in the mutation.
func (m *UserProgressMutation) CompletedAt() (r time.Time, exists bool) {
	v := m.completed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedAt returns the old "completed_at" field's value of the UserProgress entity.
// If the UserProgress object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserProgressMutation) OldCompletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletedAt: %w", err)
	}
	return oldValue.CompletedAt, nil
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (m *UserProgressMutation) ClearCompletedAt() {
	m.completed_at = nil
	m.clearedFields[userprogress.FieldCompletedAt] = struct{}{}
}

// CompletedAtCleared returns if the "completed_at" field was cleared in this mutation.
func (m *UserProgressMutation) CompletedAtCleared() bool {
	_, ok := m.clearedFields[userprogress.FieldCompletedAt]
	return ok
}

// ResetCompletedAt resets all changes to the "completed_at" field.
func (m *UserProgressMutation) ResetCompletedAt() {
	m.completed_at = nil
	delete(m.clearedFields, userprogress.FieldCompletedAt)
}

// SetQuestionsAsked sets the "questions_asked" field.
func (m *UserProgressMutation) SetQuestionsAsked(i int) {
	m.questions_asked = &i
	m.addquestions_asked = nil
}

// QuestionsAsked returns the value of the "questions_asked" field in the mutation.
func (m *UserProgressMutation) QuestionsAsked() (r int, exists bool) {
	v := m.questions_asked
	if v == nil {
		return
	}
	return *v, true
}

// OldQuestionsAsked returns the old "questions_asked" field's value of the UserProgress entity.
// If the UserProgress object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserProgressMutation) OldQuestionsAsked(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQuestionsAsked is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQuestionsAsked requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQuestionsAsked: %w", err)
	}
	return oldValue.QuestionsAsked, nil
}

// AddQuestionsAsked adds i to the "questions_asked" field.
func (m *UserProgressMutation) AddQuestionsAsked(i int) {
	if m.addquestions_asked != nil {
		*m.addquestions_asked += i
	} else {
		m.addquestions_asked = &i
	}
}

// AddedQuestionsAsked returns the value that was added to the "questions_asked" field in this mutation.
func (m *UserProgressMutation) AddedQuestionsAsked() (r int, exists bool) {
	v := m.addquestions_asked
	if v == nil {
		return
	}
	return *v, true
}

// ResetQuestionsAsked resets all changes to the "questions_asked" field.
func (m *UserProgressMutation) ResetQuestionsAsked() {
	m.questions_asked = nil
	m.addquestions_asked = nil
}

// SetConceptsBookmarked sets the "concepts_bookmarked" field.
func (m *UserProgressMutation) SetConceptsBookmarked(i int) {
	m.concepts_bookmarked = &i
	m.addconcepts_bookmarked = nil
}

// ConceptsBookmarked returns the value of the "concepts_bookmarked" field in the mutation.
func (m *UserProgressMutation) ConceptsBookmarked() (r int, exists bool) {
	v := m.concepts_bookmarked
	if v == nil {
		return
	}
	return *v, true
}

// OldConceptsBookmarked returns the old "concepts_bookmarked" field's value of the UserProgress entity.
// If the UserProgress object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserProgressMutation) OldConceptsBookmarked(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConceptsBookmarked is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConceptsBookmarked requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConceptsBookmarked: %w", err)
	}
	return oldValue.ConceptsBookmarked, nil
}

// AddConceptsBookmarked adds i to the "concepts_bookmarked" field.
func (m *UserProgressMutation) AddConceptsBookmarked(i int) {
	if m.addconcepts_bookmarked != nil {
		*m.addconcepts_bookmarked += i
	} else {
		m.addconcepts_bookmarked = &i
	}
}

// AddedConceptsBookmarked returns the value that was added to the "concepts_bookmarked" field in this mutation.
func (m *UserProgressMutation) AddedConceptsBookmarked() (r int, exists bool) {
	v := m.addconcepts_bookmarked
	if v == nil {
		return
	}
	return *v, true
}

// ResetConceptsBookmarked resets all changes to the "concepts_bookmarked" field.
func (m *UserProgressMutation) ResetConceptsBookmarked() {
	m.concepts_bookmarked = nil
	m.addconcepts_bookmarked = nil
}

// SetQuizzesTaken sets the "quizzes_taken" field.
func (m *UserProgressMutation) SetQuizzesTaken(i int) {
	m.quizzes_taken = &i
	m.addquizzes_taken = nil
}

// QuizzesTaken returns the value of the "quizzes_taken" field in the mutation.
func (m *UserProgressMutation) QuizzesTaken() (r int, exists bool) {
	v := m.quizzes_taken
	if v == nil {
		return
	}
	return *v, true
}

// OldQuizzesTaken returns the old "quizzes_taken" field's value of the UserProgress entity.
// If the UserProgress object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserProgressMutation) OldQuizzesTaken(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQuizzesTaken is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQuizzesTaken requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQuizzesTaken: %w", err)
	}
	return oldValue.QuizzesTaken, nil
}

// AddQuizzesTaken adds i to the "quizzes_taken" field.
func (m *UserProgressMutation) AddQuizzesTaken(i int) {
	if m.addquizzes_taken != nil {
		*m.addquizzes_taken += i
	} else {
		m.addquizzes_taken = &i
	}
}

// AddedQuizzesTaken returns the value that was added to the "quizzes_taken" field in this mutation.
func (m *UserProgressMutation) AddedQuizzesTaken() (r int, exists bool) {
	v := m.addquizzes_taken
	if v == nil {
		return
	}
	return *v, true
}

// ResetQuizzesTaken resets all changes to the "quizzes_taken" field.
func (m *UserProgressMutation) ResetQuizzesTaken() {
	m.quizzes_taken = nil
	m.addquizzes_taken = nil
}

// SetAvgQuizScore sets the "avg_quiz_score" field.
func (m *UserProgressMutation) SetAvgQuizScore(f float64) {
	m.avg_quiz_score = &f
	m.addavg_quiz_score = nil
}

// AvgQuizScore returns the value of the "avg_quiz_score" field in the mutation.
func (m *UserProgressMutation) AvgQuizScore() (r float64, exists bool) {
	v := m.avg_quiz_score
	if v == nil {
		return
	}
	return *v, true
}

// OldAvgQuizScore returns the old "avg_quiz_score" field's value of the UserProgress entity.
// If the UserProgress object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserProgressMutation) OldAvgQuizScore(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAvgQuizScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAvgQuizScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAvgQuizScore: %w", err)
	}
	return oldValue.AvgQuizScore, nil
}

// AddAvgQuizScore adds f to the "avg_quiz_score" field.
func (m *UserProgressMutation) AddAvgQuizScore(f float64) {
	if m.addavg_quiz_score != nil {
		*m.addavg_quiz_score += f
	} else {
		m.addavg_quiz_score = &f
	}
}

// AddedAvgQuizScore returns the value that was added to the "avg_quiz_score" field in this mutation.
func (m *UserProgressMutation) AddedAvgQuizScore() (r float64, exists bool) {
	v := m.addavg_quiz_score
	if v == nil {
		return
	}
	return *v, true
}

// ResetAvgQuizScore resets all changes to the "avg_quiz_score" field.
func (m *UserProgressMutation) ResetAvgQuizScore() {
	m.avg_quiz_score = nil
	m.addavg_quiz_score = nil
}

// SetDifficultyPreference sets the "difficulty_preference" field.
func (m *UserProgressMutation) SetDifficultyPreference(s string) {
	m.difficulty_preference = &s
}

// DifficultyPreference returns the value of the "difficulty_preference" field in the mutation.
func (m *UserProgressMutation) DifficultyPreference() (r string, exists bool) {
	v := m.difficulty_preference
	if v == nil {
		return
	}
	return *v, true
}

// OldDifficultyPreference returns the old "difficulty_preference" field's value of the UserProgress entity.
// If the UserProgress object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserProgressMutation) OldDifficultyPreference(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDifficultyPreference is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDifficultyPreference requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDifficultyPreference: %w", err)
	}
	return oldValue.DifficultyPreference, nil
}

// ResetDifficultyPreference resets all changes to the "difficulty_preference" field.
func (m *UserProgressMutation) ResetDifficultyPreference() {
	m.difficulty_preference = nil
}

// SetLearningVelocity sets the "learning_velocity" field.
func (m *UserProgressMutation) SetLearningVelocity(f float64) {
	m.learning_velocity = &f
	m.addlearning_velocity = nil
}

// LearningVelocity returns the value of the "learning_velocity" field in the mutation.
func (m *UserProgressMutation) LearningVelocity() (r float64, exists bool) {
	v := m.learning_velocity
	if v == nil {
		return
	}
	return *v, true
}

// OldLearningVelocity returns the old "learning_velocity" field's value of the UserProgress entity.
// If the UserProgress object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserProgressMutation) OldLearningVelocity(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLearningVelocity is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLearningVelocity requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLearningVelocity: %w", err)
	}
	return oldValue.LearningVelocity, nil
}

// AddLearningVelocity adds f to the "learning_velocity" field.
func (m *UserProgressMutation) AddLearningVelocity(f float64) {
	if m.addlearning_velocity != nil {
		*m.addlearning_velocity += f
	} else {
		m.addlearning_velocity = &f
	}
}

// AddedLearningVelocity returns the value that was added to the "learning_velocity" field in this mutation.
func (m *UserProgressMutation) AddedLearningVelocity() (r float64, exists bool) {
	v := m.addlearning_velocity
	if v == nil {
		return
	}
	return *v, true
}

// ResetLearningVelocity resets all changes to the "learning_velocity" field.
func (m *UserProgressMutation) ResetLearningVelocity() {
	m.learning_velocity = nil
	m.addlearning_velocity = nil
}

// SetStruggleAreas sets the "struggle_areas" field.
func (m *UserProgressMutation) SetStruggleAreas(s []string) {
	m.struggle_areas = &s
	m.appendstruggle_areas = nil
}

// StruggleAreas returns the value of the "struggle_areas" field in the mutation.
func (m *UserProgressMutation) StruggleAreas() (r []string, exists bool) {
	v := m.struggle_areas
	if v == nil {
		return
	}
	return *v, true
}

// OldStruggleAreas returns the old "struggle_areas" field's value of the UserProgress entity.
// If the UserProgress object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserProgressMutation) OldStruggleAreas(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStruggleAreas is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStruggleAreas requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStruggleAreas: %w", err)
	}
	return oldValue.StruggleAreas, nil
}

// AppendStruggleAreas adds s to the "struggle_areas" field.
func (m *UserProgressMutation) AppendStruggleAreas(s []string) {
	m.appendstruggle_areas = append(m.appendstruggle_areas, s...)
}

// AppendedStruggleAreas returns the list of values that were appended to the "struggle_areas" field in this mutation.
func (m *UserProgressMutation) AppendedStruggleAreas() ([]string, bool) {
	if len(m.appendstruggle_areas) == 0 {
		return nil, false
	}
	return m.appendstruggle_areas, true
}

// ClearStruggleAreas clears the value of the "struggle_areas" field.
func (m *UserProgressMutation) ClearStruggleAreas() {
	m.struggle_areas = nil
	m.appendstruggle_areas = nil
	m.clearedFields[userprogress.FieldStruggleAreas] = struct{}{}
}

// StruggleAreasCleared returns if the "struggle_areas" field was cleared in this mutation.
func (m *UserProgressMutation) StruggleAreasCleared() bool {
	_, ok := m.clearedFields[userprogress.FieldStruggleAreas]
	return ok
}

// ResetStruggleAreas resets all changes to the "struggle_areas" field.
func (m *UserProgressMutation) ResetStruggleAreas() {
	m.struggle_areas = nil
	m.appendstruggle_areas = nil
	delete(m.clearedFields, userprogress.FieldStruggleAreas)
}

// SetSubjectID sets the "subject_id" field.
func (m *UserProgressMutation) SetSubjectID(i int) {
	m.subject = &i
}

// SubjectID returns the value of the "subject_id" field in the mutation.
func (m *UserProgressMutation) SubjectID() (r int, exists bool) {
	v := m.subject
	if v == nil {
		return
	}
	return *v, true
}

// OldSubjectID returns the old "subject_id" field's value of the UserProgress entity.
// If the UserProgress object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserProgressMutation) OldSubjectID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSubjectID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSubjectID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSubjectID: %w", err)
	}
	return oldValue.SubjectID, nil
}

// ResetSubjectID resets all changes to the "subject_id" field.
func (m *UserProgressMutation) ResetSubjectID() {
	m.subject = nil
}

// SetChapterID sets the "chapter_id" field.
func (m *UserProgressMutation) SetChapterID(i int) {
	m.chapter = &i
}

// ChapterID returns the value of the "chapter_id" field in the mutation.
func (m *UserProgressMutation) ChapterID() (r int, exists bool) {
	v := m.chapter
	if v == nil {
		return
	}
	return *v, true
}

// OldChapterID returns the old "chapter_id" field's value of the UserProgress entity.
// If the UserProgress object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserProgressMutation) OldChapterID(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldChapterID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldChapterID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldChapterID: %w", err)
	}
	return oldValue.ChapterID, nil
}

// ClearChapterID clears the value of the "chapter_id" field.
func (m *UserProgressMutation) ClearChapterID() {
	m.chapter = nil
	m.clearedFields[userprogress.FieldChapterID] = struct{}{}
}

// ChapterIDCleared returns if the "chapter_id" field was cleared in this mutation.
func (m *UserProgressMutation) ChapterIDCleared() bool {
	_, ok := m.clearedFields[userprogress.FieldChapterID]
	return ok
}

// ResetChapterID resets all changes to the "chapter_id" field.
func (m *UserProgressMutation) ResetChapterID() {
	m.chapter = nil
	delete(m.clearedFields, userprogress.FieldChapterID)
}

// ClearSubject clears the "subject" edge to the Subject entity.
func (m *UserProgressMutation) ClearSubject() {
	m.clearedsubject = true
	m.clearedFields[userprogress.FieldSubjectID] = struct{}{}
}

// SubjectCleared reports if the "subject" edge to the Subject entity was cleared.
func (m *UserProgressMutation) SubjectCleared() bool {
	return m.clearedsubject
}

// SubjectIDs returns the "subject" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// SubjectID instead. It exists only for internal usage by the builders.
func (m *UserProgressMutation) SubjectIDs() (ids []int) {
	if id := m.subject; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetSubject resets all changes to the "subject" edge.
func (m *UserProgressMutation) ResetSubject() {
	m.subject = nil
	m.clearedsubject = false
}

// ClearChapter clears the "chapter" edge to the Chapter entity.
func (m *UserProgressMutation) ClearChapter() {
	m.clearedchapter = true
	m.clearedFields[userprogress.FieldChapterID] = struct{}{}
}

// ChapterCleared reports if the "chapter" edge to the Chapter entity was cleared.
func (m *UserProgressMutation) ChapterCleared() bool {
	return m.ChapterIDCleared() || m.clearedchapter
}

// ChapterIDs returns the "chapter" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ChapterID instead. It exists only for internal usage by the builders.
func (m *UserProgressMutation) ChapterIDs() (ids []int) {
	if id := m.chapter; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetChapter resets all changes to the "chapter" edge.
func (m *UserProgressMutation) ResetChapter() {
	m.chapter = nil
	m.clearedchapter = false
}

// Where appends a list predicates to the UserProgressMutation builder.
func (m *UserProgressMutation) Where(ps ...predicate.UserProgress) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the UserProgressMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *UserProgressMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.UserProgress, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *UserProgressMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *UserProgressMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (UserProgress).
func (m *UserProgressMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *UserProgressMutation) Fields() []string {
	fields := make([]string, 0, 17)
	if m.user_id != nil {
		fields = append(fields, userprogress.FieldUserID)
	}
	if m.status != nil {
		fields = append(fields, userprogress.FieldStatus)
	}
	if m.completion_percentage != nil {
		fields = append(fields, userprogress.FieldCompletionPercentage)
	}
	if m.mastery_level != nil {
		fields = append(fields, userprogress.FieldMasteryLevel)
	}
	if m.time_spent_minutes != nil {
		fields = append(fields, userprogress.FieldTimeSpentMinutes)
	}
	if m.sessions_count != nil {
		fields = append(fields, userprogress.FieldSessionsCount)
	}
	if m.last_accessed != nil {
		fields = append(fields, userprogress.FieldLastAccessed)
	}
	if m.completed_at != nil {
		fields = append(fields, userprogress.FieldCompletedAt)
	}
	if m.questions_asked != nil {
		fields = append(fields, userprogress.FieldQuestionsAsked)
	}
	if m.concepts_bookmarked != nil {
		fields = append(fields, userprogress.FieldConceptsBookmarked)
	}
	if m.quizzes_taken != nil {
		fields = append(fields, userprogress.FieldQuizzesTaken)
	}
	if m.avg_quiz_score != nil {
		fields = append(fields, userprogress.FieldAvgQuizScore)
	}
	if m.difficulty_preference != nil {
		fields = append(fields, userprogress.FieldDifficultyPreference)
	}
	if m.learning_velocity != nil {
		fields = append(fields, userprogress.FieldLearningVelocity)
	}
	if m.struggle_areas != nil {
		fields = append(fields, userprogress.FieldStruggleAreas)
	}
	if m.subject != nil {
		fields = append(fields, userprogress.FieldSubjectID)
	}
	if m.chapter != nil {
		fields = append(fields, userprogress.FieldChapterID)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *UserProgressMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case userprogress.FieldUserID:
		return m.UserID()
	case userprogress.FieldStatus:
		return m.Status()
	case userprogress.FieldCompletionPercentage:
		return m.CompletionPercentage()
	case userprogress.FieldMasteryLevel:
		return m.MasteryLevel()
	case userprogress.FieldTimeSpentMinutes:
		return m.TimeSpentMinutes()
	case userprogress.FieldSessionsCount:
		return m.SessionsCount()
	case userprogress.FieldLastAccessed:
		return m.LastAccessed()
	case userprogress.FieldCompletedAt:
		return m.CompletedAt()
	case userprogress.FieldQuestionsAsked:
		return m.QuestionsAsked()
	case userprogress.FieldConceptsBookmarked:
		return m.ConceptsBookmarked()
	case userprogress.FieldQuizzesTaken:
		return m.QuizzesTaken()
	case userprogress.FieldAvgQuizScore:
		return m.AvgQuizScore()
	case userprogress.FieldDifficultyPreference:
		return m.DifficultyPreference()
	case userprogress.FieldLearningVelocity:
		return m.LearningVelocity()
	case userprogress.FieldStruggleAreas:
		return m.StruggleAreas()
	case userprogress.FieldSubjectID:
		return m.SubjectID()
	case userprogress.FieldChapterID:
		return m.ChapterID()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *UserProgressMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case userprogress.FieldUserID:
		return m.OldUserID(ctx)
	case userprogress.FieldStatus:
		return m.OldStatus(ctx)
	case userprogress.FieldCompletionPercentage:
		return m.OldCompletionPercentage(ctx)
	case userprogress.FieldMasteryLevel:
		return m.OldMasteryLevel(ctx)
	case userprogress.FieldTimeSpentMinutes:
		return m.OldTimeSpentMinutes(ctx)
	case userprogress.FieldSessionsCount:
		return m.OldSessionsCount(ctx)
	case userprogress.FieldLastAccessed:
		return m.OldLastAccessed(ctx)
	case userprogress.FieldCompletedAt:
		return m.OldCompletedAt(ctx)
	case userprogress.FieldQuestionsAsked:
		return m.OldQuestionsAsked(ctx)
	case userprogress.FieldConceptsBookmarked:
		return m.OldConceptsBookmarked(ctx)
	case userprogress.FieldQuizzesTaken:
		return m.OldQuizzesTaken(ctx)
	case userprogress.FieldAvgQuizScore:
		return m.OldAvgQuizScore(ctx)
	case userprogress.FieldDifficultyPreference:
		return m.OldDifficultyPreference(ctx)
	case userprogress.FieldLearningVelocity:
		return m.OldLearningVelocity(ctx)
	case userprogress.FieldStruggleAreas:
		return m.OldStruggleAreas(ctx)
	case userprogress.FieldSubjectID:
		return m.OldSubjectID(ctx)
	case userprogress.FieldChapterID:
		return m.OldChapterID(ctx)
	}
	return nil, fmt.Errorf("unknown UserProgress field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *UserProgressMutation) SetField(name string, value ent.Value) error {
	switch name {
	case userprogress.FieldUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case userprogress.FieldStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case userprogress.FieldCompletionPercentage:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletionPercentage(v)
		return nil
	case userprogress.FieldMasteryLevel:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMasteryLevel(v)
		return nil
	case userprogress.FieldTimeSpentMinutes:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimeSpentMinutes(v)
		return nil
	case userprogress.FieldSessionsCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionsCount(v)
		return nil
	case userprogress.FieldLastAccessed:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastAccessed(v)
		return nil
	case userprogress.FieldCompletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedAt(v)
		return nil
	case userprogress.FieldQuestionsAsked:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQuestionsAsked(v)
		return nil
	case userprogress.FieldConceptsBookmarked:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConceptsBookmarked(v)
		return nil
	case userprogress.FieldQuizzesTaken:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQuizzesTaken(v)
		return nil
	case userprogress.FieldAvgQuizScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAvgQuizScore(v)
		return nil
	case userprogress.FieldDifficultyPreference:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDifficultyPreference(v)
		return nil
	case userprogress.FieldLearningVelocity:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLearningVelocity(v)
		return nil
	case userprogress.FieldStruggleAreas:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStruggleAreas(v)
		return nil
	case userprogress.FieldSubjectID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSubjectID(v)
		return nil
	case userprogress.FieldChapterID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetChapterID(v)
		return nil
	}
	return fmt.Errorf("unknown UserProgress field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *UserProgressMutation) AddedFields() []string {
	var fields []string
	if m.addcompletion_percentage != nil {
		fields = append(fields, userprogress.FieldCompletionPercentage)
	}
	if m.addtime_spent_minutes != nil {
		fields = append(fields, userprogress.FieldTimeSpentMinutes)
	}
	if m.addsessions_count != nil {
		fields = append(fields, userprogress.FieldSessionsCount)
	}
	if m.addquestions_asked != nil {
		fields = append(fields, userprogress.FieldQuestionsAsked)
	}
	if m.addconcepts_bookmarked != nil {
		fields = append(fields, userprogress.FieldConceptsBookmarked)
	}
	if m.addquizzes_taken != nil {
		fields = append(fields, userprogress.FieldQuizzesTaken)
	}
	if m.addavg_quiz_score != nil {
		fields = append(fields, userprogress.FieldAvgQuizScore)
	}
	if m.addlearning_velocity != nil {
		fields = append(fields, userprogress.FieldLearningVelocity)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *UserProgressMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case userprogress.FieldCompletionPercentage:
		return m.AddedCompletionPercentage()
	case userprogress.FieldTimeSpentMinutes:
		return m.AddedTimeSpentMinutes()
	case userprogress.FieldSessionsCount:
		return m.AddedSessionsCount()
	case userprogress.FieldQuestionsAsked:
		return m.AddedQuestionsAsked()
	case userprogress.FieldConceptsBookmarked:
		return m.AddedConceptsBookmarked()
	case userprogress.FieldQuizzesTaken:
		return m.AddedQuizzesTaken()
	case userprogress.FieldAvgQuizScore:
		return m.AddedAvgQuizScore()
	case userprogress.FieldLearningVelocity:
		return m.AddedLearningVelocity()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *UserProgressMutation) AddField(name string, value ent.Value) error {
	switch name {
	case userprogress.FieldCompletionPercentage:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCompletionPercentage(v)
		return nil
	case userprogress.FieldTimeSpentMinutes:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTimeSpentMinutes(v)
		return nil
	case userprogress.FieldSessionsCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSessionsCount(v)
		return nil
	case userprogress.FieldQuestionsAsked:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddQuestionsAsked(v)
		return nil
	case userprogress.FieldConceptsBookmarked:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddConceptsBookmarked(v)
		return nil
	case userprogress.FieldQuizzesTaken:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddQuizzesTaken(v)
		return nil
	case userprogress.FieldAvgQuizScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAvgQuizScore(v)
		return nil
	case userprogress.FieldLearningVelocity:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddLearningVelocity(v)
		return nil
	}
	return fmt.Errorf("unknown UserProgress numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *UserProgressMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(userprogress.FieldCompletedAt) {
		fields = append(fields, userprogress.FieldCompletedAt)
	}
	if m.FieldCleared(userprogress.FieldStruggleAreas) {
		fields = append(fields, userprogress.FieldStruggleAreas)
	}
	if m.FieldCleared(userprogress.FieldChapterID) {
		fields = append(fields, userprogress.FieldChapterID)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *UserProgressMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *UserProgressMutation) ClearField(name string) error {
	switch name {
	case userprogress.FieldCompletedAt:
		m.ClearCompletedAt()
		return nil
	case userprogress.FieldStruggleAreas:
		m.ClearStruggleAreas()
		return nil
	case userprogress.FieldChapterID:
		m.ClearChapterID()
		return nil
	}
	return fmt.Errorf("unknown UserProgress nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *UserProgressMutation) ResetField(name string) error {
	switch name {
	case userprogress.FieldUserID:
		m.ResetUserID()
		return nil
	case userprogress.FieldStatus:
		m.ResetStatus()
		return nil
	case userprogress.FieldCompletionPercentage:
		m.ResetCompletionPercentage()
		return nil
	case userprogress.FieldMasteryLevel:
		m.ResetMasteryLevel()
		return nil
	case userprogress.FieldTimeSpentMinutes:
		m.ResetTimeSpentMinutes()
		return nil
	case userprogress.FieldSessionsCount:
		m.ResetSessionsCount()
		return nil
	case userprogress.FieldLastAccessed:
		m.ResetLastAccessed()
		return nil
	case userprogress.FieldCompletedAt:
		m.ResetCompletedAt()
		return nil
	case userprogress.FieldQuestionsAsked:
		m.ResetQuestionsAsked()
		return nil
	case userprogress.FieldConceptsBookmarked:
		m.ResetConceptsBookmarked()
		return nil
	case userprogress.FieldQuizzesTaken:
		m.ResetQuizzesTaken()
		return nil
	case userprogress.FieldAvgQuizScore:
		m.ResetAvgQuizScore()
		return nil
	case userprogress.FieldDifficultyPreference:
		m.ResetDifficultyPreference()
		return nil
	case userprogress.FieldLearningVelocity:
		m.ResetLearningVelocity()
		return nil
	case userprogress.FieldStruggleAreas:
		m.ResetStruggleAreas()
		return nil
	case userprogress.FieldSubjectID:
		m.ResetSubjectID()
		return nil
	case userprogress.FieldChapterID:
		m.ResetChapterID()
		return nil
	}
	return fmt.Errorf("unknown UserProgress field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *UserProgressMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.subject != nil {
		edges = append(edges, userprogress.EdgeSubject)
	}
	if m.chapter != nil {
		edges = append(edges, userprogress.EdgeChapter)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *UserProgressMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case userprogress.EdgeSubject:
		if id := m.subject; id != nil {
			return []ent.Value{*id}
		}
	case userprogress.EdgeChapter:
		if id := m.chapter; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *UserProgressMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *UserProgressMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *UserProgressMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedsubject {
		edges = append(edges, userprogress.EdgeSubject)
	}
	if m.clearedchapter {
		edges = append(edges, userprogress.EdgeChapter)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *UserProgressMutation) EdgeCleared(name string) bool {
	switch name {
	case userprogress.EdgeSubject:
		return m.clearedsubject
	case userprogress.EdgeChapter:
		return m.clearedchapter
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *UserProgressMutation) ClearEdge(name string) error {
	switch name {
	case userprogress.EdgeSubject:
		m.ClearSubject()
		return nil
	case userprogress.EdgeChapter:
		m.ClearChapter()
		return nil
	}
	return fmt.Errorf("unknown UserProgress unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *UserProgressMutation) ResetEdge(name string) error {
	switch name {
	case userprogress.EdgeSubject:
		m.ResetSubject()
		return nil
	case userprogress.EdgeChapter:
		m.ResetChapter()
		return nil
	}
	return fmt.Errorf("unknown UserProgress edge %s", name)
}
