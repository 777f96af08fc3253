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
	"github.com/radarpautas/radar/ent/alert"
	"github.com/radarpautas/radar/ent/docanchor"
	"github.com/radarpautas/radar/ent/docevidencefeature"
	"github.com/radarpautas/radar/ent/document"
	"github.com/radarpautas/radar/ent/entitymention"
	"github.com/radarpautas/radar/ent/event"
	"github.com/radarpautas/radar/ent/eventalertstate"
	"github.com/radarpautas/radar/ent/eventdoc"
	"github.com/radarpautas/radar/ent/eventscore"
	"github.com/radarpautas/radar/ent/eventstate"
	"github.com/radarpautas/radar/ent/feedbackevent"
	"github.com/radarpautas/radar/ent/fetchattempt"
	"github.com/radarpautas/radar/ent/mergeaudit"
	"github.com/radarpautas/radar/ent/predicate"
	"github.com/radarpautas/radar/ent/snapshot"
	"github.com/radarpautas/radar/ent/source"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeAlert              = "Alert"
	TypeDocAnchor          = "DocAnchor"
	TypeDocEvidenceFeature = "DocEvidenceFeature"
	TypeDocument           = "Document"
	TypeEntityMention      = "EntityMention"
	TypeEvent              = "Event"
	TypeEventAlertState    = "EventAlertState"
	TypeEventDoc           = "EventDoc"
	TypeEventScore         = "EventScore"
	TypeEventState         = "EventState"
	TypeFeedbackEvent      = "FeedbackEvent"
	TypeFetchAttempt       = "FetchAttempt"
	TypeMergeAudit         = "MergeAudit"
	TypeSnapshot           = "Snapshot"
	TypeSource             = "Source"
)

// AlertMutation represents an operation that mutates the Alert nodes in the graph.
type AlertMutation struct {
	config
	op            Op
	typ           string
	id            *int
	event_id      *int
	addevent_id   *int
	channel       *string
	status        *string
	alert_hash    *string
	payload_json  *map[string]interface{}
	created_at    *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*Alert, error)
	predicates    []predicate.Alert
}

var _ ent.Mutation = (*AlertMutation)(nil)

// alertOption allows management of the mutation configuration using functional options.
type alertOption func(*AlertMutation)

// newAlertMutation creates new mutation for the Alert entity.
func newAlertMutation(c config, op Op, opts ...alertOption) *AlertMutation {
	m := &AlertMutation{
		config:        c,
		op:            op,
		typ:           TypeAlert,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAlertID sets the ID field of the mutation.
func withAlertID(id int) alertOption {
	return func(m *AlertMutation) {
		var (
			err   error
			once  sync.Once
			value *Alert
		)
		m.oldValue = func(ctx context.Context) (*Alert, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Alert.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAlert sets the old Alert of the mutation.
func withAlert(node *Alert) alertOption {
	return func(m *AlertMutation) {
		m.oldValue = func(context.Context) (*Alert, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AlertMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AlertMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AlertMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AlertMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Alert.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetEventID sets the "event_id" field.
func (m *AlertMutation) SetEventID(i int) {
	m.event_id = &i
	m.addevent_id = nil
}

// EventID returns the value of the "event_id" field in the mutation.
func (m *AlertMutation) EventID() (r int, exists bool) {
	v := m.event_id
	if v == nil {
		return
	}
	return *v, true
}

// OldEventID returns the old "event_id" field's value of the Alert entity.
// If the Alert object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AlertMutation) OldEventID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEventID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEventID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEventID: %w", err)
	}
	return oldValue.EventID, nil
}

// AddEventID adds i to the "event_id" field.
func (m *AlertMutation) AddEventID(i int) {
	if m.addevent_id != nil {
		*m.addevent_id += i
	} else {
		m.addevent_id = &i
	}
}

// AddedEventID returns the value that was added to the "event_id" field in this mutation.
func (m *AlertMutation) AddedEventID() (r int, exists bool) {
	v := m.addevent_id
	if v == nil {
		return
	}
	return *v, true
}

// ResetEventID resets all changes to the "event_id" field.
func (m *AlertMutation) ResetEventID() {
	m.event_id = nil
	m.addevent_id = nil
}

// SetChannel sets the "channel" field.
func (m *AlertMutation) SetChannel(s string) {
	m.channel = &s
}

// Channel returns the value of the "channel" field in the mutation.
func (m *AlertMutation) Channel() (r string, exists bool) {
	v := m.channel
	if v == nil {
		return
	}
	return *v, true
}

// OldChannel returns the old "channel" field's value of the Alert entity.
// If the Alert object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AlertMutation) OldChannel(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldChannel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldChannel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldChannel: %w", err)
	}
	return oldValue.Channel, nil
}

// ResetChannel resets all changes to the "channel" field.
func (m *AlertMutation) ResetChannel() {
	m.channel = nil
}

// SetStatus sets the "status" field.
func (m *AlertMutation) SetStatus(s string) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *AlertMutation) Status() (r string, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Alert entity.
// If the Alert object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AlertMutation) OldStatus(ctx context.Context) (v string, err error) {
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
func (m *AlertMutation) ResetStatus() {
	m.status = nil
}

// SetAlertHash sets the "alert_hash" field.
func (m *AlertMutation) SetAlertHash(s string) {
	m.alert_hash = &s
}

// AlertHash returns the value of the "alert_hash" field in the mutation.
func (m *AlertMutation) AlertHash() (r string, exists bool) {
	v := m.alert_hash
	if v == nil {
		return
	}
	return *v, true
}

// OldAlertHash returns the old "alert_hash" field's value of the Alert entity.
// If the Alert object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AlertMutation) OldAlertHash(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAlertHash is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAlertHash requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAlertHash: %w", err)
	}
	return oldValue.AlertHash, nil
}

// ResetAlertHash resets all changes to the "alert_hash" field.
func (m *AlertMutation) ResetAlertHash() {
	m.alert_hash = nil
}

// SetPayloadJSON sets the "payload_json" field.
func (m *AlertMutation) SetPayloadJSON(value map[string]interface{}) {
	m.payload_json = &value
}

// PayloadJSON returns the value of the "payload_json" field in the mutation.
func (m *AlertMutation) PayloadJSON() (r map[string]interface{}, exists bool) {
	v := m.payload_json
	if v == nil {
		return
	}
	return *v, true
}

// OldPayloadJSON returns the old "payload_json" field's value of the Alert entity.
// If the Alert object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AlertMutation) OldPayloadJSON(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPayloadJSON is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPayloadJSON requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPayloadJSON: %w", err)
	}
	return oldValue.PayloadJSON, nil
}

// ClearPayloadJSON clears the value of the "payload_json" field.
func (m *AlertMutation) ClearPayloadJSON() {
	m.payload_json = nil
	m.clearedFields[alert.FieldPayloadJSON] = struct{}{}
}

// PayloadJSONCleared returns if the "payload_json" field was cleared in this mutation.
func (m *AlertMutation) PayloadJSONCleared() bool {
	_, ok := m.clearedFields[alert.FieldPayloadJSON]
	return ok
}

// ResetPayloadJSON resets all changes to the "payload_json" field.
func (m *AlertMutation) ResetPayloadJSON() {
	m.payload_json = nil
	delete(m.clearedFields, alert.FieldPayloadJSON)
}

// SetCreatedAt sets the "created_at" field.
func (m *AlertMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *AlertMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Alert entity.
// If the Alert object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AlertMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *AlertMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the AlertMutation builder.
func (m *AlertMutation) Where(ps ...predicate.Alert) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AlertMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AlertMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Alert, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AlertMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AlertMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Alert).
func (m *AlertMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AlertMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.event_id != nil {
		fields = append(fields, alert.FieldEventID)
	}
	if m.channel != nil {
		fields = append(fields, alert.FieldChannel)
	}
	if m.status != nil {
		fields = append(fields, alert.FieldStatus)
	}
	if m.alert_hash != nil {
		fields = append(fields, alert.FieldAlertHash)
	}
	if m.payload_json != nil {
		fields = append(fields, alert.FieldPayloadJSON)
	}
	if m.created_at != nil {
		fields = append(fields, alert.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AlertMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case alert.FieldEventID:
		return m.EventID()
	case alert.FieldChannel:
		return m.Channel()
	case alert.FieldStatus:
		return m.Status()
	case alert.FieldAlertHash:
		return m.AlertHash()
	case alert.FieldPayloadJSON:
		return m.PayloadJSON()
	case alert.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AlertMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case alert.FieldEventID:
		return m.OldEventID(ctx)
	case alert.FieldChannel:
		return m.OldChannel(ctx)
	case alert.FieldStatus:
		return m.OldStatus(ctx)
	case alert.FieldAlertHash:
		return m.OldAlertHash(ctx)
	case alert.FieldPayloadJSON:
		return m.OldPayloadJSON(ctx)
	case alert.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Alert field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AlertMutation) SetField(name string, value ent.Value) error {
	switch name {
	case alert.FieldEventID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEventID(v)
		return nil
	case alert.FieldChannel:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetChannel(v)
		return nil
	case alert.FieldStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case alert.FieldAlertHash:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAlertHash(v)
		return nil
	case alert.FieldPayloadJSON:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPayloadJSON(v)
		return nil
	case alert.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Alert field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AlertMutation) AddedFields() []string {
	var fields []string
	if m.addevent_id != nil {
		fields = append(fields, alert.FieldEventID)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AlertMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case alert.FieldEventID:
		return m.AddedEventID()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AlertMutation) AddField(name string, value ent.Value) error {
	switch name {
	case alert.FieldEventID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddEventID(v)
		return nil
	}
	return fmt.Errorf("unknown Alert numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AlertMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(alert.FieldPayloadJSON) {
		fields = append(fields, alert.FieldPayloadJSON)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AlertMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AlertMutation) ClearField(name string) error {
	switch name {
	case alert.FieldPayloadJSON:
		m.ClearPayloadJSON()
		return nil
	}
	return fmt.Errorf("unknown Alert nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AlertMutation) ResetField(name string) error {
	switch name {
	case alert.FieldEventID:
		m.ResetEventID()
		return nil
	case alert.FieldChannel:
		m.ResetChannel()
		return nil
	case alert.FieldStatus:
		m.ResetStatus()
		return nil
	case alert.FieldAlertHash:
		m.ResetAlertHash()
		return nil
	case alert.FieldPayloadJSON:
		m.ResetPayloadJSON()
		return nil
	case alert.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Alert field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AlertMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AlertMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AlertMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AlertMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AlertMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AlertMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AlertMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Alert unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AlertMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Alert edge %s", name)
}

// DocAnchorMutation represents an operation that mutates the DocAnchor nodes in the graph.
type DocAnchorMutation struct {
	config
	op              Op
	typ             string
	id              *int
	_type           *docanchor.Type
	value           *string
	evidence_ptr    *string
	confidence      *float64
	addconfidence   *float64
	created_at      *time.Time
	clearedFields   map[string]struct{}
	document        *int
	cleareddocument bool
	done            bool
	oldValue        func(context.Context) (*DocAnchor, error)
	predicates      []predicate.DocAnchor
}

var _ ent.Mutation = (*DocAnchorMutation)(nil)

// docanchorOption allows management of the mutation configuration using functional options.
type docanchorOption func(*DocAnchorMutation)

// newDocAnchorMutation creates new mutation for the DocAnchor entity.
func newDocAnchorMutation(c config, op Op, opts ...docanchorOption) *DocAnchorMutation {
	m := &DocAnchorMutation{
		config:        c,
		op:            op,
		typ:           TypeDocAnchor,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withDocAnchorID sets the ID field of the mutation.
func withDocAnchorID(id int) docanchorOption {
	return func(m *DocAnchorMutation) {
		var (
			err   error
			once  sync.Once
			value *DocAnchor
		)
		m.oldValue = func(ctx context.Context) (*DocAnchor, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().DocAnchor.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withDocAnchor sets the old DocAnchor of the mutation.
func withDocAnchor(node *DocAnchor) docanchorOption {
	return func(m *DocAnchorMutation) {
		m.oldValue = func(context.Context) (*DocAnchor, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m DocAnchorMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m DocAnchorMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *DocAnchorMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *DocAnchorMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().DocAnchor.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetDocID sets the "doc_id" field.
func (m *DocAnchorMutation) SetDocID(i int) {
	m.document = &i
}

// DocID returns the value of the "doc_id" field in the mutation.
func (m *DocAnchorMutation) DocID() (r int, exists bool) {
	v := m.document
	if v == nil {
		return
	}
	return *v, true
}

// OldDocID returns the old "doc_id" field's value of the DocAnchor entity.
// If the DocAnchor object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocAnchorMutation) OldDocID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDocID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDocID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDocID: %w", err)
	}
	return oldValue.DocID, nil
}

// ResetDocID resets all changes to the "doc_id" field.
func (m *DocAnchorMutation) ResetDocID() {
	m.document = nil
}

// SetType sets the "type" field.
func (m *DocAnchorMutation) SetType(d docanchor.Type) {
	m._type = &d
}

// GetType returns the value of the "type" field in the mutation.
func (m *DocAnchorMutation) GetType() (r docanchor.Type, exists bool) {
	v := m._type
	if v == nil {
		return
	}
	return *v, true
}

// OldType returns the old "type" field's value of the DocAnchor entity.
// If the DocAnchor object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocAnchorMutation) OldType(ctx context.Context) (v docanchor.Type, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldType: %w", err)
	}
	return oldValue.Type, nil
}

// ResetType resets all changes to the "type" field.
func (m *DocAnchorMutation) ResetType() {
	m._type = nil
}

// SetValue sets the "value" field.
func (m *DocAnchorMutation) SetValue(s string) {
	m.value = &s
}

// Value returns the value of the "value" field in the mutation.
func (m *DocAnchorMutation) Value() (r string, exists bool) {
	v := m.value
	if v == nil {
		return
	}
	return *v, true
}

// OldValue returns the old "value" field's value of the DocAnchor entity.
// If the DocAnchor object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocAnchorMutation) OldValue(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldValue is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldValue requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldValue: %w", err)
	}
	return oldValue.Value, nil
}

// ResetValue resets all changes to the "value" field.
func (m *DocAnchorMutation) ResetValue() {
	m.value = nil
}

// SetEvidencePtr sets the "evidence_ptr" field.
func (m *DocAnchorMutation) SetEvidencePtr(s string) {
	m.evidence_ptr = &s
}

// EvidencePtr returns the value of the "evidence_ptr" field in the mutation.
func (m *DocAnchorMutation) EvidencePtr() (r string, exists bool) {
	v := m.evidence_ptr
	if v == nil {
		return
	}
	return *v, true
}

// OldEvidencePtr returns the old "evidence_ptr" field's value of the DocAnchor entity.
// If the DocAnchor object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocAnchorMutation) OldEvidencePtr(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEvidencePtr is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEvidencePtr requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEvidencePtr: %w", err)
	}
	return oldValue.EvidencePtr, nil
}

// ClearEvidencePtr clears the value of the "evidence_ptr" field.
func (m *DocAnchorMutation) ClearEvidencePtr() {
	m.evidence_ptr = nil
	m.clearedFields[docanchor.FieldEvidencePtr] = struct{}{}
}

// EvidencePtrCleared returns if the "evidence_ptr" field was cleared in this mutation.
func (m *DocAnchorMutation) EvidencePtrCleared() bool {
	_, ok := m.clearedFields[docanchor.FieldEvidencePtr]
	return ok
}

// ResetEvidencePtr resets all changes to the "evidence_ptr" field.
func (m *DocAnchorMutation) ResetEvidencePtr() {
	m.evidence_ptr = nil
	delete(m.clearedFields, docanchor.FieldEvidencePtr)
}

// SetConfidence sets the "confidence" field.
func (m *DocAnchorMutation) SetConfidence(f float64) {
	m.confidence = &f
	m.addconfidence = nil
}

// Confidence returns the value of the "confidence" field in the mutation.
func (m *DocAnchorMutation) Confidence() (r float64, exists bool) {
	v := m.confidence
	if v == nil {
		return
	}
	return *v, true
}

// OldConfidence returns the old "confidence" field's value of the DocAnchor entity.
// If the DocAnchor object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocAnchorMutation) OldConfidence(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConfidence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConfidence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConfidence: %w", err)
	}
	return oldValue.Confidence, nil
}

// AddConfidence adds f to the "confidence" field.
func (m *DocAnchorMutation) AddConfidence(f float64) {
	if m.addconfidence != nil {
		*m.addconfidence += f
	} else {
		m.addconfidence = &f
	}
}

// AddedConfidence returns the value that was added to the "confidence" field in this mutation.
func (m *DocAnchorMutation) AddedConfidence() (r float64, exists bool) {
	v := m.addconfidence
	if v == nil {
		return
	}
	return *v, true
}

// ResetConfidence resets all changes to the "confidence" field.
func (m *DocAnchorMutation) ResetConfidence() {
	m.confidence = nil
	m.addconfidence = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *DocAnchorMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *DocAnchorMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the DocAnchor entity.
// If the DocAnchor object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocAnchorMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *DocAnchorMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetDocumentID sets the "document" edge to the Document entity by id.
func (m *DocAnchorMutation) SetDocumentID(id int) {
	m.document = &id
}

// ClearDocument clears the "document" edge to the Document entity.
func (m *DocAnchorMutation) ClearDocument() {
	m.cleareddocument = true
	m.clearedFields[docanchor.FieldDocID] = struct{}{}
}

// DocumentCleared reports if the "document" edge to the Document entity was cleared.
func (m *DocAnchorMutation) DocumentCleared() bool {
	return m.cleareddocument
}

// DocumentID returns the "document" edge ID in the mutation.
func (m *DocAnchorMutation) DocumentID() (id int, exists bool) {
	if m.document != nil {
		return *m.document, true
	}
	return
}

// DocumentIDs returns the "document" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// DocumentID instead. It exists only for internal usage by the builders.
func (m *DocAnchorMutation) DocumentIDs() (ids []int) {
	if id := m.document; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetDocument resets all changes to the "document" edge.
func (m *DocAnchorMutation) ResetDocument() {
	m.document = nil
	m.cleareddocument = false
}

// Where appends a list predicates to the DocAnchorMutation builder.
func (m *DocAnchorMutation) Where(ps ...predicate.DocAnchor) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the DocAnchorMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *DocAnchorMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.DocAnchor, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *DocAnchorMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *DocAnchorMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (DocAnchor).
func (m *DocAnchorMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *DocAnchorMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.document != nil {
		fields = append(fields, docanchor.FieldDocID)
	}
	if m._type != nil {
		fields = append(fields, docanchor.FieldType)
	}
	if m.value != nil {
		fields = append(fields, docanchor.FieldValue)
	}
	if m.evidence_ptr != nil {
		fields = append(fields, docanchor.FieldEvidencePtr)
	}
	if m.confidence != nil {
		fields = append(fields, docanchor.FieldConfidence)
	}
	if m.created_at != nil {
		fields = append(fields, docanchor.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *DocAnchorMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case docanchor.FieldDocID:
		return m.DocID()
	case docanchor.FieldType:
		return m.GetType()
	case docanchor.FieldValue:
		return m.Value()
	case docanchor.FieldEvidencePtr:
		return m.EvidencePtr()
	case docanchor.FieldConfidence:
		return m.Confidence()
	case docanchor.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *DocAnchorMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case docanchor.FieldDocID:
		return m.OldDocID(ctx)
	case docanchor.FieldType:
		return m.OldType(ctx)
	case docanchor.FieldValue:
		return m.OldValue(ctx)
	case docanchor.FieldEvidencePtr:
		return m.OldEvidencePtr(ctx)
	case docanchor.FieldConfidence:
		return m.OldConfidence(ctx)
	case docanchor.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown DocAnchor field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DocAnchorMutation) SetField(name string, value ent.Value) error {
	switch name {
	case docanchor.FieldDocID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDocID(v)
		return nil
	case docanchor.FieldType:
		v, ok := value.(docanchor.Type)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetType(v)
		return nil
	case docanchor.FieldValue:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetValue(v)
		return nil
	case docanchor.FieldEvidencePtr:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEvidencePtr(v)
		return nil
	case docanchor.FieldConfidence:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConfidence(v)
		return nil
	case docanchor.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown DocAnchor field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *DocAnchorMutation) AddedFields() []string {
	var fields []string
	if m.addconfidence != nil {
		fields = append(fields, docanchor.FieldConfidence)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *DocAnchorMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case docanchor.FieldConfidence:
		return m.AddedConfidence()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DocAnchorMutation) AddField(name string, value ent.Value) error {
	switch name {
	case docanchor.FieldConfidence:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddConfidence(v)
		return nil
	}
	return fmt.Errorf("unknown DocAnchor numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *DocAnchorMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(docanchor.FieldEvidencePtr) {
		fields = append(fields, docanchor.FieldEvidencePtr)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *DocAnchorMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *DocAnchorMutation) ClearField(name string) error {
	switch name {
	case docanchor.FieldEvidencePtr:
		m.ClearEvidencePtr()
		return nil
	}
	return fmt.Errorf("unknown DocAnchor nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *DocAnchorMutation) ResetField(name string) error {
	switch name {
	case docanchor.FieldDocID:
		m.ResetDocID()
		return nil
	case docanchor.FieldType:
		m.ResetType()
		return nil
	case docanchor.FieldValue:
		m.ResetValue()
		return nil
	case docanchor.FieldEvidencePtr:
		m.ResetEvidencePtr()
		return nil
	case docanchor.FieldConfidence:
		m.ResetConfidence()
		return nil
	case docanchor.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown DocAnchor field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *DocAnchorMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.document != nil {
		edges = append(edges, docanchor.EdgeDocument)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *DocAnchorMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case docanchor.EdgeDocument:
		if id := m.document; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *DocAnchorMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *DocAnchorMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *DocAnchorMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.cleareddocument {
		edges = append(edges, docanchor.EdgeDocument)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *DocAnchorMutation) EdgeCleared(name string) bool {
	switch name {
	case docanchor.EdgeDocument:
		return m.cleareddocument
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *DocAnchorMutation) ClearEdge(name string) error {
	switch name {
	case docanchor.EdgeDocument:
		m.ClearDocument()
		return nil
	}
	return fmt.Errorf("unknown DocAnchor unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *DocAnchorMutation) ResetEdge(name string) error {
	switch name {
	case docanchor.EdgeDocument:
		m.ResetDocument()
		return nil
	}
	return fmt.Errorf("unknown DocAnchor edge %s", name)
}

// DocEvidenceFeatureMutation represents an operation that mutates the DocEvidenceFeature nodes in the graph.
type DocEvidenceFeatureMutation struct {
	config
	op                  Op
	typ                 string
	id                  *int
	evidence_score      *float64
	addevidence_score   *float64
	has_pdf             *bool
	has_official_domain *bool
	anchors_count       *int
	addanchors_count    *int
	money_count         *int
	addmoney_count      *int
	has_table_like      *bool
	evidence_json       *map[string]interface{}
	clearedFields       map[string]struct{}
	document            *int
	cleareddocument     bool
	done                bool
	oldValue            func(context.Context) (*DocEvidenceFeature, error)
	predicates          []predicate.DocEvidenceFeature
}

var _ ent.Mutation = (*DocEvidenceFeatureMutation)(nil)

// docevidencefeatureOption allows management of the mutation configuration using functional options.
type docevidencefeatureOption func(*DocEvidenceFeatureMutation)

// newDocEvidenceFeatureMutation creates new mutation for the DocEvidenceFeature entity.
func newDocEvidenceFeatureMutation(c config, op Op, opts ...docevidencefeatureOption) *DocEvidenceFeatureMutation {
	m := &DocEvidenceFeatureMutation{
		config:        c,
		op:            op,
		typ:           TypeDocEvidenceFeature,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withDocEvidenceFeatureID sets the ID field of the mutation.
func withDocEvidenceFeatureID(id int) docevidencefeatureOption {
	return func(m *DocEvidenceFeatureMutation) {
		var (
			err   error
			once  sync.Once
			value *DocEvidenceFeature
		)
		m.oldValue = func(ctx context.Context) (*DocEvidenceFeature, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().DocEvidenceFeature.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withDocEvidenceFeature sets the old DocEvidenceFeature of the mutation.
func withDocEvidenceFeature(node *DocEvidenceFeature) docevidencefeatureOption {
	return func(m *DocEvidenceFeatureMutation) {
		m.oldValue = func(context.Context) (*DocEvidenceFeature, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m DocEvidenceFeatureMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m DocEvidenceFeatureMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *DocEvidenceFeatureMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *DocEvidenceFeatureMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().DocEvidenceFeature.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetDocID sets the "doc_id" field.
func (m *DocEvidenceFeatureMutation) SetDocID(i int) {
	m.document = &i
}

// DocID returns the value of the "doc_id" field in the mutation.
func (m *DocEvidenceFeatureMutation) DocID() (r int, exists bool) {
	v := m.document
	if v == nil {
		return
	}
	return *v, true
}

// OldDocID returns the old "doc_id" field's value of the DocEvidenceFeature entity.
// If the DocEvidenceFeature object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocEvidenceFeatureMutation) OldDocID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDocID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDocID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDocID: %w", err)
	}
	return oldValue.DocID, nil
}

// ResetDocID resets all changes to the "doc_id" field.
func (m *DocEvidenceFeatureMutation) ResetDocID() {
	m.document = nil
}

// SetEvidenceScore sets the "evidence_score" field.
func (m *DocEvidenceFeatureMutation) SetEvidenceScore(f float64) {
	m.evidence_score = &f
	m.addevidence_score = nil
}

// EvidenceScore returns the value of the "evidence_score" field in the mutation.
func (m *DocEvidenceFeatureMutation) EvidenceScore() (r float64, exists bool) {
	v := m.evidence_score
	if v == nil {
		return
	}
	return *v, true
}

// OldEvidenceScore returns the old "evidence_score" field's value of the DocEvidenceFeature entity.
// If the DocEvidenceFeature object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocEvidenceFeatureMutation) OldEvidenceScore(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEvidenceScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEvidenceScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEvidenceScore: %w", err)
	}
	return oldValue.EvidenceScore, nil
}

// AddEvidenceScore adds f to the "evidence_score" field.
func (m *DocEvidenceFeatureMutation) AddEvidenceScore(f float64) {
	if m.addevidence_score != nil {
		*m.addevidence_score += f
	} else {
		m.addevidence_score = &f
	}
}

// AddedEvidenceScore returns the value that was added to the "evidence_score" field in this mutation.
func (m *DocEvidenceFeatureMutation) AddedEvidenceScore() (r float64, exists bool) {
	v := m.addevidence_score
	if v == nil {
		return
	}
	return *v, true
}

// ResetEvidenceScore resets all changes to the "evidence_score" field.
func (m *DocEvidenceFeatureMutation) ResetEvidenceScore() {
	m.evidence_score = nil
	m.addevidence_score = nil
}

// SetHasPdf sets the "has_pdf" field.
func (m *DocEvidenceFeatureMutation) SetHasPdf(b bool) {
	m.has_pdf = &b
}

// HasPdf returns the value of the "has_pdf" field in the mutation.
func (m *DocEvidenceFeatureMutation) HasPdf() (r bool, exists bool) {
	v := m.has_pdf
	if v == nil {
		return
	}
	return *v, true
}

// OldHasPdf returns the old "has_pdf" field's value of the DocEvidenceFeature entity.
// If the DocEvidenceFeature object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocEvidenceFeatureMutation) OldHasPdf(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldHasPdf is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldHasPdf requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldHasPdf: %w", err)
	}
	return oldValue.HasPdf, nil
}

// ResetHasPdf resets all changes to the "has_pdf" field.
func (m *DocEvidenceFeatureMutation) ResetHasPdf() {
	m.has_pdf = nil
}

// SetHasOfficialDomain sets the "has_official_domain" field.
func (m *DocEvidenceFeatureMutation) SetHasOfficialDomain(b bool) {
	m.has_official_domain = &b
}

// HasOfficialDomain returns the value of the "has_official_domain" field in the mutation.
func (m *DocEvidenceFeatureMutation) HasOfficialDomain() (r bool, exists bool) {
	v := m.has_official_domain
	if v == nil {
		return
	}
	return *v, true
}

// OldHasOfficialDomain returns the old "has_official_domain" field's value of the DocEvidenceFeature entity.
// If the DocEvidenceFeature object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocEvidenceFeatureMutation) OldHasOfficialDomain(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldHasOfficialDomain is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldHasOfficialDomain requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldHasOfficialDomain: %w", err)
	}
	return oldValue.HasOfficialDomain, nil
}

// ResetHasOfficialDomain resets all changes to the "has_official_domain" field.
func (m *DocEvidenceFeatureMutation) ResetHasOfficialDomain() {
	m.has_official_domain = nil
}

// SetAnchorsCount sets the "anchors_count" field.
func (m *DocEvidenceFeatureMutation) SetAnchorsCount(i int) {
	m.anchors_count = &i
	m.addanchors_count = nil
}

// AnchorsCount returns the value of the "anchors_count" field in the mutation.
func (m *DocEvidenceFeatureMutation) AnchorsCount() (r int, exists bool) {
	v := m.anchors_count
	if v == nil {
		return
	}
	return *v, true
}

// OldAnchorsCount returns the old "anchors_count" field's value of the DocEvidenceFeature entity.
// If the DocEvidenceFeature object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocEvidenceFeatureMutation) OldAnchorsCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAnchorsCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAnchorsCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAnchorsCount: %w", err)
	}
	return oldValue.AnchorsCount, nil
}

// AddAnchorsCount adds i to the "anchors_count" field.
func (m *DocEvidenceFeatureMutation) AddAnchorsCount(i int) {
	if m.addanchors_count != nil {
		*m.addanchors_count += i
	} else {
		m.addanchors_count = &i
	}
}

// AddedAnchorsCount returns the value that was added to the "anchors_count" field in this mutation.
func (m *DocEvidenceFeatureMutation) AddedAnchorsCount() (r int, exists bool) {
	v := m.addanchors_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetAnchorsCount resets all changes to the "anchors_count" field.
func (m *DocEvidenceFeatureMutation) ResetAnchorsCount() {
	m.anchors_count = nil
	m.addanchors_count = nil
}

// SetMoneyCount sets the "money_count" field.
func (m *DocEvidenceFeatureMutation) SetMoneyCount(i int) {
	m.money_count = &i
	m.addmoney_count = nil
}

// MoneyCount returns the value of the "money_count" field in the mutation.
func (m *DocEvidenceFeatureMutation) MoneyCount() (r int, exists bool) {
	v := m.money_count
	if v == nil {
		return
	}
	return *v, true
}

// OldMoneyCount returns the old "money_count" field's value of the DocEvidenceFeature entity.
// If the DocEvidenceFeature object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocEvidenceFeatureMutation) OldMoneyCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMoneyCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMoneyCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMoneyCount: %w", err)
	}
	return oldValue.MoneyCount, nil
}

// AddMoneyCount adds i to the "money_count" field.
func (m *DocEvidenceFeatureMutation) AddMoneyCount(i int) {
	if m.addmoney_count != nil {
		*m.addmoney_count += i
	} else {
		m.addmoney_count = &i
	}
}

// AddedMoneyCount returns the value that was added to the "money_count" field in this mutation.
func (m *DocEvidenceFeatureMutation) AddedMoneyCount() (r int, exists bool) {
	v := m.addmoney_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetMoneyCount resets all changes to the "money_count" field.
func (m *DocEvidenceFeatureMutation) ResetMoneyCount() {
	m.money_count = nil
	m.addmoney_count = nil
}

// SetHasTableLike sets the "has_table_like" field.
func (m *DocEvidenceFeatureMutation) SetHasTableLike(b bool) {
	m.has_table_like = &b
}

// HasTableLike returns the value of the "has_table_like" field in the mutation.
func (m *DocEvidenceFeatureMutation) HasTableLike() (r bool, exists bool) {
	v := m.has_table_like
	if v == nil {
		return
	}
	return *v, true
}

// OldHasTableLike returns the old "has_table_like" field's value of the DocEvidenceFeature entity.
// If the DocEvidenceFeature object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocEvidenceFeatureMutation) OldHasTableLike(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldHasTableLike is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldHasTableLike requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldHasTableLike: %w", err)
	}
	return oldValue.HasTableLike, nil
}

// ResetHasTableLike resets all changes to the "has_table_like" field.
func (m *DocEvidenceFeatureMutation) ResetHasTableLike() {
	m.has_table_like = nil
}

// SetEvidenceJSON sets the "evidence_json" field.
func (m *DocEvidenceFeatureMutation) SetEvidenceJSON(value map[string]interface{}) {
	m.evidence_json = &value
}

// EvidenceJSON returns the value of the "evidence_json" field in the mutation.
func (m *DocEvidenceFeatureMutation) EvidenceJSON() (r map[string]interface{}, exists bool) {
	v := m.evidence_json
	if v == nil {
		return
	}
	return *v, true
}

// OldEvidenceJSON returns the old "evidence_json" field's value of the DocEvidenceFeature entity.
// If the DocEvidenceFeature object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocEvidenceFeatureMutation) OldEvidenceJSON(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEvidenceJSON is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEvidenceJSON requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEvidenceJSON: %w", err)
	}
	return oldValue.EvidenceJSON, nil
}

// ClearEvidenceJSON clears the value of the "evidence_json" field.
func (m *DocEvidenceFeatureMutation) ClearEvidenceJSON() {
	m.evidence_json = nil
	m.clearedFields[docevidencefeature.FieldEvidenceJSON] = struct{}{}
}

// EvidenceJSONCleared returns if the "evidence_json" field was cleared in this mutation.
func (m *DocEvidenceFeatureMutation) EvidenceJSONCleared() bool {
	_, ok := m.clearedFields[docevidencefeature.FieldEvidenceJSON]
	return ok
}

// ResetEvidenceJSON resets all changes to the "evidence_json" field.
func (m *DocEvidenceFeatureMutation) ResetEvidenceJSON() {
	m.evidence_json = nil
	delete(m.clearedFields, docevidencefeature.FieldEvidenceJSON)
}

// SetDocumentID sets the "document" edge to the Document entity by id.
func (m *DocEvidenceFeatureMutation) SetDocumentID(id int) {
	m.document = &id
}

// ClearDocument clears the "document" edge to the Document entity.
func (m *DocEvidenceFeatureMutation) ClearDocument() {
	m.cleareddocument = true
	m.clearedFields[docevidencefeature.FieldDocID] = struct{}{}
}

// DocumentCleared reports if the "document" edge to the Document entity was cleared.
func (m *DocEvidenceFeatureMutation) DocumentCleared() bool {
	return m.cleareddocument
}

// DocumentID returns the "document" edge ID in the mutation.
func (m *DocEvidenceFeatureMutation) DocumentID() (id int, exists bool) {
	if m.document != nil {
		return *m.document, true
	}
	return
}

// DocumentIDs returns the "document" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// DocumentID instead. It exists only for internal usage by the builders.
func (m *DocEvidenceFeatureMutation) DocumentIDs() (ids []int) {
	if id := m.document; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetDocument resets all changes to the "document" edge.
func (m *DocEvidenceFeatureMutation) ResetDocument() {
	m.document = nil
	m.cleareddocument = false
}

// Where appends a list predicates to the DocEvidenceFeatureMutation builder.
func (m *DocEvidenceFeatureMutation) Where(ps ...predicate.DocEvidenceFeature) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the DocEvidenceFeatureMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *DocEvidenceFeatureMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.DocEvidenceFeature, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *DocEvidenceFeatureMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *DocEvidenceFeatureMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (DocEvidenceFeature).
func (m *DocEvidenceFeatureMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *DocEvidenceFeatureMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.document != nil {
		fields = append(fields, docevidencefeature.FieldDocID)
	}
	if m.evidence_score != nil {
		fields = append(fields, docevidencefeature.FieldEvidenceScore)
	}
	if m.has_pdf != nil {
		fields = append(fields, docevidencefeature.FieldHasPdf)
	}
	if m.has_official_domain != nil {
		fields = append(fields, docevidencefeature.FieldHasOfficialDomain)
	}
	if m.anchors_count != nil {
		fields = append(fields, docevidencefeature.FieldAnchorsCount)
	}
	if m.money_count != nil {
		fields = append(fields, docevidencefeature.FieldMoneyCount)
	}
	if m.has_table_like != nil {
		fields = append(fields, docevidencefeature.FieldHasTableLike)
	}
	if m.evidence_json != nil {
		fields = append(fields, docevidencefeature.FieldEvidenceJSON)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *DocEvidenceFeatureMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case docevidencefeature.FieldDocID:
		return m.DocID()
	case docevidencefeature.FieldEvidenceScore:
		return m.EvidenceScore()
	case docevidencefeature.FieldHasPdf:
		return m.HasPdf()
	case docevidencefeature.FieldHasOfficialDomain:
		return m.HasOfficialDomain()
	case docevidencefeature.FieldAnchorsCount:
		return m.AnchorsCount()
	case docevidencefeature.FieldMoneyCount:
		return m.MoneyCount()
	case docevidencefeature.FieldHasTableLike:
		return m.HasTableLike()
	case docevidencefeature.FieldEvidenceJSON:
		return m.EvidenceJSON()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *DocEvidenceFeatureMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case docevidencefeature.FieldDocID:
		return m.OldDocID(ctx)
	case docevidencefeature.FieldEvidenceScore:
		return m.OldEvidenceScore(ctx)
	case docevidencefeature.FieldHasPdf:
		return m.OldHasPdf(ctx)
	case docevidencefeature.FieldHasOfficialDomain:
		return m.OldHasOfficialDomain(ctx)
	case docevidencefeature.FieldAnchorsCount:
		return m.OldAnchorsCount(ctx)
	case docevidencefeature.FieldMoneyCount:
		return m.OldMoneyCount(ctx)
	case docevidencefeature.FieldHasTableLike:
		return m.OldHasTableLike(ctx)
	case docevidencefeature.FieldEvidenceJSON:
		return m.OldEvidenceJSON(ctx)
	}
	return nil, fmt.Errorf("unknown DocEvidenceFeature field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DocEvidenceFeatureMutation) SetField(name string, value ent.Value) error {
	switch name {
	case docevidencefeature.FieldDocID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDocID(v)
		return nil
	case docevidencefeature.FieldEvidenceScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEvidenceScore(v)
		return nil
	case docevidencefeature.FieldHasPdf:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetHasPdf(v)
		return nil
	case docevidencefeature.FieldHasOfficialDomain:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetHasOfficialDomain(v)
		return nil
	case docevidencefeature.FieldAnchorsCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAnchorsCount(v)
		return nil
	case docevidencefeature.FieldMoneyCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMoneyCount(v)
		return nil
	case docevidencefeature.FieldHasTableLike:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetHasTableLike(v)
		return nil
	case docevidencefeature.FieldEvidenceJSON:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEvidenceJSON(v)
		return nil
	}
	return fmt.Errorf("unknown DocEvidenceFeature field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *DocEvidenceFeatureMutation) AddedFields() []string {
	var fields []string
	if m.addevidence_score != nil {
		fields = append(fields, docevidencefeature.FieldEvidenceScore)
	}
	if m.addanchors_count != nil {
		fields = append(fields, docevidencefeature.FieldAnchorsCount)
	}
	if m.addmoney_count != nil {
		fields = append(fields, docevidencefeature.FieldMoneyCount)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *DocEvidenceFeatureMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case docevidencefeature.FieldEvidenceScore:
		return m.AddedEvidenceScore()
	case docevidencefeature.FieldAnchorsCount:
		return m.AddedAnchorsCount()
	case docevidencefeature.FieldMoneyCount:
		return m.AddedMoneyCount()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DocEvidenceFeatureMutation) AddField(name string, value ent.Value) error {
	switch name {
	case docevidencefeature.FieldEvidenceScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddEvidenceScore(v)
		return nil
	case docevidencefeature.FieldAnchorsCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAnchorsCount(v)
		return nil
	case docevidencefeature.FieldMoneyCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddMoneyCount(v)
		return nil
	}
	return fmt.Errorf("unknown DocEvidenceFeature numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *DocEvidenceFeatureMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(docevidencefeature.FieldEvidenceJSON) {
		fields = append(fields, docevidencefeature.FieldEvidenceJSON)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *DocEvidenceFeatureMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *DocEvidenceFeatureMutation) ClearField(name string) error {
	switch name {
	case docevidencefeature.FieldEvidenceJSON:
		m.ClearEvidenceJSON()
		return nil
	}
	return fmt.Errorf("unknown DocEvidenceFeature nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *DocEvidenceFeatureMutation) ResetField(name string) error {
	switch name {
	case docevidencefeature.FieldDocID:
		m.ResetDocID()
		return nil
	case docevidencefeature.FieldEvidenceScore:
		m.ResetEvidenceScore()
		return nil
	case docevidencefeature.FieldHasPdf:
		m.ResetHasPdf()
		return nil
	case docevidencefeature.FieldHasOfficialDomain:
		m.ResetHasOfficialDomain()
		return nil
	case docevidencefeature.FieldAnchorsCount:
		m.ResetAnchorsCount()
		return nil
	case docevidencefeature.FieldMoneyCount:
		m.ResetMoneyCount()
		return nil
	case docevidencefeature.FieldHasTableLike:
		m.ResetHasTableLike()
		return nil
	case docevidencefeature.FieldEvidenceJSON:
		m.ResetEvidenceJSON()
		return nil
	}
	return fmt.Errorf("unknown DocEvidenceFeature field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *DocEvidenceFeatureMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.document != nil {
		edges = append(edges, docevidencefeature.EdgeDocument)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *DocEvidenceFeatureMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case docevidencefeature.EdgeDocument:
		if id := m.document; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *DocEvidenceFeatureMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *DocEvidenceFeatureMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *DocEvidenceFeatureMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.cleareddocument {
		edges = append(edges, docevidencefeature.EdgeDocument)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *DocEvidenceFeatureMutation) EdgeCleared(name string) bool {
	switch name {
	case docevidencefeature.EdgeDocument:
		return m.cleareddocument
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *DocEvidenceFeatureMutation) ClearEdge(name string) error {
	switch name {
	case docevidencefeature.EdgeDocument:
		m.ClearDocument()
		return nil
	}
	return fmt.Errorf("unknown DocEvidenceFeature unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *DocEvidenceFeatureMutation) ResetEdge(name string) error {
	switch name {
	case docevidencefeature.EdgeDocument:
		m.ResetDocument()
		return nil
	}
	return fmt.Errorf("unknown DocEvidenceFeature edge %s", name)
}

// DocumentMutation represents an operation that mutates the Document nodes in the graph.
type DocumentMutation struct {
	config
	op              Op
	typ             string
	id              *int
	snapshot_id     *int
	addsnapshot_id  *int
	url             *string
	canonical_url   *string
	title           *string
	author          *string
	published_at    *time.Time
	modified_at     *time.Time
	clean_text      *string
	language        *string
	content_hash    *string
	simhash         *uint64
	addsimhash      *int64
	version_no      *int
	addversion_no   *int
	lane            *string
	created_at      *time.Time
	clearedFields   map[string]struct{}
	source          *int
	clearedsource   bool
	anchors         map[int]struct{}
	removedanchors  map[int]struct{}
	clearedanchors  bool
	evidence        *int
	clearedevidence bool
	mentions        map[int]struct{}
	removedmentions map[int]struct{}
	clearedmentions bool
	done            bool
	oldValue        func(context.Context) (*Document, error)
	predicates      []predicate.Document
}

var _ ent.Mutation = (*DocumentMutation)(nil)

// documentOption allows management of the mutation configuration using functional options.
type documentOption func(*DocumentMutation)

// newDocumentMutation creates new mutation for the Document entity.
func newDocumentMutation(c config, op Op, opts ...documentOption) *DocumentMutation {
	m := &DocumentMutation{
		config:        c,
		op:            op,
		typ:           TypeDocument,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withDocumentID sets the ID field of the mutation.
func withDocumentID(id int) documentOption {
	return func(m *DocumentMutation) {
		var (
			err   error
			once  sync.Once
			value *Document
		)
		m.oldValue = func(ctx context.Context) (*Document, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Document.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withDocument sets the old Document of the mutation.
func withDocument(node *Document) documentOption {
	return func(m *DocumentMutation) {
		m.oldValue = func(context.Context) (*Document, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m DocumentMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m DocumentMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *DocumentMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *DocumentMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Document.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSourceID sets the "source_id" field.
func (m *DocumentMutation) SetSourceID(i int) {
	m.source = &i
}

// SourceID returns the value of the "source_id" field in the mutation.
func (m *DocumentMutation) SourceID() (r int, exists bool) {
	v := m.source
	if v == nil {
		return
	}
	return *v, true
}

// OldSourceID returns the old "source_id" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldSourceID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSourceID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSourceID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSourceID: %w", err)
	}
	return oldValue.SourceID, nil
}

// ResetSourceID resets all changes to the "source_id" field.
func (m *DocumentMutation) ResetSourceID() {
	m.source = nil
}

// SetSnapshotID sets the "snapshot_id" field.
func (m *DocumentMutation) SetSnapshotID(i int) {
	m.snapshot_id = &i
	m.addsnapshot_id = nil
}

// SnapshotID returns the value of the "snapshot_id" field in the mutation.
func (m *DocumentMutation) SnapshotID() (r int, exists bool) {
	v := m.snapshot_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSnapshotID returns the old "snapshot_id" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldSnapshotID(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSnapshotID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSnapshotID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSnapshotID: %w", err)
	}
	return oldValue.SnapshotID, nil
}

// AddSnapshotID adds i to the "snapshot_id" field.
func (m *DocumentMutation) AddSnapshotID(i int) {
	if m.addsnapshot_id != nil {
		*m.addsnapshot_id += i
	} else {
		m.addsnapshot_id = &i
	}
}

// AddedSnapshotID returns the value that was added to the "snapshot_id" field in this mutation.
func (m *DocumentMutation) AddedSnapshotID() (r int, exists bool) {
	v := m.addsnapshot_id
	if v == nil {
		return
	}
	return *v, true
}

// ClearSnapshotID clears the value of the "snapshot_id" field.
func (m *DocumentMutation) ClearSnapshotID() {
	m.snapshot_id = nil
	m.addsnapshot_id = nil
	m.clearedFields[document.FieldSnapshotID] = struct{}{}
}

// SnapshotIDCleared returns if the "snapshot_id" field was cleared in this mutation.
func (m *DocumentMutation) SnapshotIDCleared() bool {
	_, ok := m.clearedFields[document.FieldSnapshotID]
	return ok
}

// ResetSnapshotID resets all changes to the "snapshot_id" field.
func (m *DocumentMutation) ResetSnapshotID() {
	m.snapshot_id = nil
	m.addsnapshot_id = nil
	delete(m.clearedFields, document.FieldSnapshotID)
}

// SetURL sets the "url" field.
func (m *DocumentMutation) SetURL(s string) {
	m.url = &s
}

// URL returns the value of the "url" field in the mutation.
func (m *DocumentMutation) URL() (r string, exists bool) {
	v := m.url
	if v == nil {
		return
	}
	return *v, true
}

// OldURL returns the old "url" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldURL(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldURL is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldURL requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldURL: %w", err)
	}
	return oldValue.URL, nil
}

// ResetURL resets all changes to the "url" field.
func (m *DocumentMutation) ResetURL() {
	m.url = nil
}

// SetCanonicalURL sets the "canonical_url" field.
func (m *DocumentMutation) SetCanonicalURL(s string) {
	m.canonical_url = &s
}

// CanonicalURL returns the value of the "canonical_url" field in the mutation.
func (m *DocumentMutation) CanonicalURL() (r string, exists bool) {
	v := m.canonical_url
	if v == nil {
		return
	}
	return *v, true
}

// OldCanonicalURL returns the old "canonical_url" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldCanonicalURL(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCanonicalURL is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCanonicalURL requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCanonicalURL: %w", err)
	}
	return oldValue.CanonicalURL, nil
}

// ClearCanonicalURL clears the value of the "canonical_url" field.
func (m *DocumentMutation) ClearCanonicalURL() {
	m.canonical_url = nil
	m.clearedFields[document.FieldCanonicalURL] = struct{}{}
}

// CanonicalURLCleared returns if the "canonical_url" field was cleared in this mutation.
func (m *DocumentMutation) CanonicalURLCleared() bool {
	_, ok := m.clearedFields[document.FieldCanonicalURL]
	return ok
}

// ResetCanonicalURL resets all changes to the "canonical_url" field.
func (m *DocumentMutation) ResetCanonicalURL() {
	m.canonical_url = nil
	delete(m.clearedFields, document.FieldCanonicalURL)
}

// SetTitle sets the "title" field.
func (m *DocumentMutation) SetTitle(s string) {
	m.title = &s
}

// Title returns the value of the "title" field in the mutation.
func (m *DocumentMutation) Title() (r string, exists bool) {
	v := m.title
	if v == nil {
		return
	}
	return *v, true
}

// OldTitle returns the old "title" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldTitle(ctx context.Context) (v string, err error) {
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

// ClearTitle clears the value of the "title" field.
func (m *DocumentMutation) ClearTitle() {
	m.title = nil
	m.clearedFields[document.FieldTitle] = struct{}{}
}

// TitleCleared returns if the "title" field was cleared in this mutation.
func (m *DocumentMutation) TitleCleared() bool {
	_, ok := m.clearedFields[document.FieldTitle]
	return ok
}

// ResetTitle resets all changes to the "title" field.
func (m *DocumentMutation) ResetTitle() {
	m.title = nil
	delete(m.clearedFields, document.FieldTitle)
}

// SetAuthor sets the "author" field.
func (m *DocumentMutation) SetAuthor(s string) {
	m.author = &s
}

// Author returns the value of the "author" field in the mutation.
func (m *DocumentMutation) Author() (r string, exists bool) {
	v := m.author
	if v == nil {
		return
	}
	return *v, true
}

// OldAuthor returns the old "author" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldAuthor(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAuthor is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAuthor requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAuthor: %w", err)
	}
	return oldValue.Author, nil
}

// ClearAuthor clears the value of the "author" field.
func (m *DocumentMutation) ClearAuthor() {
	m.author = nil
	m.clearedFields[document.FieldAuthor] = struct{}{}
}

// AuthorCleared returns if the "author" field was cleared in this mutation.
func (m *DocumentMutation) AuthorCleared() bool {
	_, ok := m.clearedFields[document.FieldAuthor]
	return ok
}

// ResetAuthor resets all changes to the "author" field.
func (m *DocumentMutation) ResetAuthor() {
	m.author = nil
	delete(m.clearedFields, document.FieldAuthor)
}

// SetPublishedAt sets the "published_at" field.
func (m *DocumentMutation) SetPublishedAt(t time.Time) {
	m.published_at = &t
}

// PublishedAt returns the value of the "published_at" field in the mutation.
func (m *DocumentMutation) PublishedAt() (r time.Time, exists bool) {
	v := m.published_at
	if v == nil {
		return
	}
	return *v, true
}

// OldPublishedAt returns the old "published_at" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldPublishedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPublishedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPublishedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPublishedAt: %w", err)
	}
	return oldValue.PublishedAt, nil
}

// ClearPublishedAt clears the value of the "published_at" field.
func (m *DocumentMutation) ClearPublishedAt() {
	m.published_at = nil
	m.clearedFields[document.FieldPublishedAt] = struct{}{}
}

// PublishedAtCleared returns if the "published_at" field was cleared in this mutation.
func (m *DocumentMutation) PublishedAtCleared() bool {
	_, ok := m.clearedFields[document.FieldPublishedAt]
	return ok
}

// ResetPublishedAt resets all changes to the "published_at" field.
func (m *DocumentMutation) ResetPublishedAt() {
	m.published_at = nil
	delete(m.clearedFields, document.FieldPublishedAt)
}

// SetModifiedAt sets the "modified_at" field.
func (m *DocumentMutation) SetModifiedAt(t time.Time) {
	m.modified_at = &t
}

// ModifiedAt returns the value of the "modified_at" field in the mutation.
func (m *DocumentMutation) ModifiedAt() (r time.Time, exists bool) {
	v := m.modified_at
	if v == nil {
		return
	}
	return *v, true
}

// OldModifiedAt returns the old "modified_at" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldModifiedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldModifiedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldModifiedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldModifiedAt: %w", err)
	}
	return oldValue.ModifiedAt, nil
}

// ClearModifiedAt clears the value of the "modified_at" field.
func (m *DocumentMutation) ClearModifiedAt() {
	m.modified_at = nil
	m.clearedFields[document.FieldModifiedAt] = struct{}{}
}

// ModifiedAtCleared returns if the "modified_at" field was cleared in this mutation.
func (m *DocumentMutation) ModifiedAtCleared() bool {
	_, ok := m.clearedFields[document.FieldModifiedAt]
	return ok
}

// ResetModifiedAt resets all changes to the "modified_at" field.
func (m *DocumentMutation) ResetModifiedAt() {
	m.modified_at = nil
	delete(m.clearedFields, document.FieldModifiedAt)
}

// SetCleanText sets the "clean_text" field.
func (m *DocumentMutation) SetCleanText(s string) {
	m.clean_text = &s
}

// CleanText returns the value of the "clean_text" field in the mutation.
func (m *DocumentMutation) CleanText() (r string, exists bool) {
	v := m.clean_text
	if v == nil {
		return
	}
	return *v, true
}

// OldCleanText returns the old "clean_text" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldCleanText(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCleanText is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCleanText requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCleanText: %w", err)
	}
	return oldValue.CleanText, nil
}

// ResetCleanText resets all changes to the "clean_text" field.
func (m *DocumentMutation) ResetCleanText() {
	m.clean_text = nil
}

// SetLanguage sets the "language" field.
func (m *DocumentMutation) SetLanguage(s string) {
	m.language = &s
}

// Language returns the value of the "language" field in the mutation.
func (m *DocumentMutation) Language() (r string, exists bool) {
	v := m.language
	if v == nil {
		return
	}
	return *v, true
}

// OldLanguage returns the old "language" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldLanguage(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLanguage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLanguage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLanguage: %w", err)
	}
	return oldValue.Language, nil
}

// ClearLanguage clears the value of the "language" field.
func (m *DocumentMutation) ClearLanguage() {
	m.language = nil
	m.clearedFields[document.FieldLanguage] = struct{}{}
}

// LanguageCleared returns if the "language" field was cleared in this mutation.
func (m *DocumentMutation) LanguageCleared() bool {
	_, ok := m.clearedFields[document.FieldLanguage]
	return ok
}

// ResetLanguage resets all changes to the "language" field.
func (m *DocumentMutation) ResetLanguage() {
	m.language = nil
	delete(m.clearedFields, document.FieldLanguage)
}

// SetContentHash sets the "content_hash" field.
func (m *DocumentMutation) SetContentHash(s string) {
	m.content_hash = &s
}

// ContentHash returns the value of the "content_hash" field in the mutation.
func (m *DocumentMutation) ContentHash() (r string, exists bool) {
	v := m.content_hash
	if v == nil {
		return
	}
	return *v, true
}

// OldContentHash returns the old "content_hash" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldContentHash(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContentHash is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContentHash requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContentHash: %w", err)
	}
	return oldValue.ContentHash, nil
}

// ResetContentHash resets all changes to the "content_hash" field.
func (m *DocumentMutation) ResetContentHash() {
	m.content_hash = nil
}

// SetSimhash sets the "simhash" field.
func (m *DocumentMutation) SetSimhash(u uint64) {
	m.simhash = &u
	m.addsimhash = nil
}

// Simhash returns the value of the "simhash" field in the mutation.
func (m *DocumentMutation) Simhash() (r uint64, exists bool) {
	v := m.simhash
	if v == nil {
		return
	}
	return *v, true
}

// OldSimhash returns the old "simhash" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldSimhash(ctx context.Context) (v uint64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSimhash is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSimhash requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSimhash: %w", err)
	}
	return oldValue.Simhash, nil
}

// AddSimhash adds u to the "simhash" field.
func (m *DocumentMutation) AddSimhash(u int64) {
	if m.addsimhash != nil {
		*m.addsimhash += u
	} else {
		m.addsimhash = &u
	}
}

// AddedSimhash returns the value that was added to the "simhash" field in this mutation.
func (m *DocumentMutation) AddedSimhash() (r int64, exists bool) {
	v := m.addsimhash
	if v == nil {
		return
	}
	return *v, true
}

// ClearSimhash clears the value of the "simhash" field.
func (m *DocumentMutation) ClearSimhash() {
	m.simhash = nil
	m.addsimhash = nil
	m.clearedFields[document.FieldSimhash] = struct{}{}
}

// SimhashCleared returns if the "simhash" field was cleared in this mutation.
func (m *DocumentMutation) SimhashCleared() bool {
	_, ok := m.clearedFields[document.FieldSimhash]
	return ok
}

// ResetSimhash resets all changes to the "simhash" field.
func (m *DocumentMutation) ResetSimhash() {
	m.simhash = nil
	m.addsimhash = nil
	delete(m.clearedFields, document.FieldSimhash)
}

// SetVersionNo sets the "version_no" field.
func (m *DocumentMutation) SetVersionNo(i int) {
	m.version_no = &i
	m.addversion_no = nil
}

// VersionNo returns the value of the "version_no" field in the mutation.
func (m *DocumentMutation) VersionNo() (r int, exists bool) {
	v := m.version_no
	if v == nil {
		return
	}
	return *v, true
}

// OldVersionNo returns the old "version_no" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldVersionNo(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVersionNo is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVersionNo requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVersionNo: %w", err)
	}
	return oldValue.VersionNo, nil
}

// AddVersionNo adds i to the "version_no" field.
func (m *DocumentMutation) AddVersionNo(i int) {
	if m.addversion_no != nil {
		*m.addversion_no += i
	} else {
		m.addversion_no = &i
	}
}

// AddedVersionNo returns the value that was added to the "version_no" field in this mutation.
func (m *DocumentMutation) AddedVersionNo() (r int, exists bool) {
	v := m.addversion_no
	if v == nil {
		return
	}
	return *v, true
}

// ResetVersionNo resets all changes to the "version_no" field.
func (m *DocumentMutation) ResetVersionNo() {
	m.version_no = nil
	m.addversion_no = nil
}

// SetLane sets the "lane" field.
func (m *DocumentMutation) SetLane(s string) {
	m.lane = &s
}

// Lane returns the value of the "lane" field in the mutation.
func (m *DocumentMutation) Lane() (r string, exists bool) {
	v := m.lane
	if v == nil {
		return
	}
	return *v, true
}

// OldLane returns the old "lane" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldLane(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLane is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLane requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLane: %w", err)
	}
	return oldValue.Lane, nil
}

// ClearLane clears the value of the "lane" field.
func (m *DocumentMutation) ClearLane() {
	m.lane = nil
	m.clearedFields[document.FieldLane] = struct{}{}
}

// LaneCleared returns if the "lane" field was cleared in this mutation.
func (m *DocumentMutation) LaneCleared() bool {
	_, ok := m.clearedFields[document.FieldLane]
	return ok
}

// ResetLane resets all changes to the "lane" field.
func (m *DocumentMutation) ResetLane() {
	m.lane = nil
	delete(m.clearedFields, document.FieldLane)
}

// SetCreatedAt sets the "created_at" field.
func (m *DocumentMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *DocumentMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *DocumentMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearSource clears the "source" edge to the Source entity.
func (m *DocumentMutation) ClearSource() {
	m.clearedsource = true
	m.clearedFields[document.FieldSourceID] = struct{}{}
}

// SourceCleared reports if the "source" edge to the Source entity was cleared.
func (m *DocumentMutation) SourceCleared() bool {
	return m.clearedsource
}

// SourceIDs returns the "source" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// SourceID instead. It exists only for internal usage by the builders.
func (m *DocumentMutation) SourceIDs() (ids []int) {
	if id := m.source; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetSource resets all changes to the "source" edge.
func (m *DocumentMutation) ResetSource() {
	m.source = nil
	m.clearedsource = false
}

// AddAnchorIDs adds the "anchors" edge to the DocAnchor entity by ids.
func (m *DocumentMutation) AddAnchorIDs(ids ...int) {
	if m.anchors == nil {
		m.anchors = make(map[int]struct{})
	}
	for i := range ids {
		m.anchors[ids[i]] = struct{}{}
	}
}

// ClearAnchors clears the "anchors" edge to the DocAnchor entity.
func (m *DocumentMutation) ClearAnchors() {
	m.clearedanchors = true
}

// AnchorsCleared reports if the "anchors" edge to the DocAnchor entity was cleared.
func (m *DocumentMutation) AnchorsCleared() bool {
	return m.clearedanchors
}

// RemoveAnchorIDs removes the "anchors" edge to the DocAnchor entity by IDs.
func (m *DocumentMutation) RemoveAnchorIDs(ids ...int) {
	if m.removedanchors == nil {
		m.removedanchors = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.anchors, ids[i])
		m.removedanchors[ids[i]] = struct{}{}
	}
}

// RemovedAnchors returns the removed IDs of the "anchors" edge to the DocAnchor entity.
func (m *DocumentMutation) RemovedAnchorsIDs() (ids []int) {
	for id := range m.removedanchors {
		ids = append(ids, id)
	}
	return
}

// AnchorsIDs returns the "anchors" edge IDs in the mutation.
func (m *DocumentMutation) AnchorsIDs() (ids []int) {
	for id := range m.anchors {
		ids = append(ids, id)
	}
	return
}

// ResetAnchors resets all changes to the "anchors" edge.
func (m *DocumentMutation) ResetAnchors() {
	m.anchors = nil
	m.clearedanchors = false
	m.removedanchors = nil
}

// SetEvidenceID sets the "evidence" edge to the DocEvidenceFeature entity by id.
func (m *DocumentMutation) SetEvidenceID(id int) {
	m.evidence = &id
}

// ClearEvidence clears the "evidence" edge to the DocEvidenceFeature entity.
func (m *DocumentMutation) ClearEvidence() {
	m.clearedevidence = true
}

// EvidenceCleared reports if the "evidence" edge to the DocEvidenceFeature entity was cleared.
func (m *DocumentMutation) EvidenceCleared() bool {
	return m.clearedevidence
}

// EvidenceID returns the "evidence" edge ID in the mutation.
func (m *DocumentMutation) EvidenceID() (id int, exists bool) {
	if m.evidence != nil {
		return *m.evidence, true
	}
	return
}

// EvidenceIDs returns the "evidence" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// EvidenceID instead. It exists only for internal usage by the builders.
func (m *DocumentMutation) EvidenceIDs() (ids []int) {
	if id := m.evidence; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetEvidence resets all changes to the "evidence" edge.
func (m *DocumentMutation) ResetEvidence() {
	m.evidence = nil
	m.clearedevidence = false
}

// AddMentionIDs adds the "mentions" edge to the EntityMention entity by ids.
func (m *DocumentMutation) AddMentionIDs(ids ...int) {
	if m.mentions == nil {
		m.mentions = make(map[int]struct{})
	}
	for i := range ids {
		m.mentions[ids[i]] = struct{}{}
	}
}

// ClearMentions clears the "mentions" edge to the EntityMention entity.
func (m *DocumentMutation) ClearMentions() {
	m.clearedmentions = true
}

// MentionsCleared reports if the "mentions" edge to the EntityMention entity was cleared.
func (m *DocumentMutation) MentionsCleared() bool {
	return m.clearedmentions
}

// RemoveMentionIDs removes the "mentions" edge to the EntityMention entity by IDs.
func (m *DocumentMutation) RemoveMentionIDs(ids ...int) {
	if m.removedmentions == nil {
		m.removedmentions = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.mentions, ids[i])
		m.removedmentions[ids[i]] = struct{}{}
	}
}

// RemovedMentions returns the removed IDs of the "mentions" edge to the EntityMention entity.
func (m *DocumentMutation) RemovedMentionsIDs() (ids []int) {
	for id := range m.removedmentions {
		ids = append(ids, id)
	}
	return
}

// MentionsIDs returns the "mentions" edge IDs in the mutation.
func (m *DocumentMutation) MentionsIDs() (ids []int) {
	for id := range m.mentions {
		ids = append(ids, id)
	}
	return
}

// ResetMentions resets all changes to the "mentions" edge.
func (m *DocumentMutation) ResetMentions() {
	m.mentions = nil
	m.clearedmentions = false
	m.removedmentions = nil
}

// Where appends a list predicates to the DocumentMutation builder.
func (m *DocumentMutation) Where(ps ...predicate.Document) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the DocumentMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *DocumentMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Document, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *DocumentMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *DocumentMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Document).
func (m *DocumentMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *DocumentMutation) Fields() []string {
	fields := make([]string, 0, 15)
	if m.source != nil {
		fields = append(fields, document.FieldSourceID)
	}
	if m.snapshot_id != nil {
		fields = append(fields, document.FieldSnapshotID)
	}
	if m.url != nil {
		fields = append(fields, document.FieldURL)
	}
	if m.canonical_url != nil {
		fields = append(fields, document.FieldCanonicalURL)
	}
	if m.title != nil {
		fields = append(fields, document.FieldTitle)
	}
	if m.author != nil {
		fields = append(fields, document.FieldAuthor)
	}
	if m.published_at != nil {
		fields = append(fields, document.FieldPublishedAt)
	}
	if m.modified_at != nil {
		fields = append(fields, document.FieldModifiedAt)
	}
	if m.clean_text != nil {
		fields = append(fields, document.FieldCleanText)
	}
	if m.language != nil {
		fields = append(fields, document.FieldLanguage)
	}
	if m.content_hash != nil {
		fields = append(fields, document.FieldContentHash)
	}
	if m.simhash != nil {
		fields = append(fields, document.FieldSimhash)
	}
	if m.version_no != nil {
		fields = append(fields, document.FieldVersionNo)
	}
	if m.lane != nil {
		fields = append(fields, document.FieldLane)
	}
	if m.created_at != nil {
		fields = append(fields, document.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *DocumentMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case document.FieldSourceID:
		return m.SourceID()
	case document.FieldSnapshotID:
		return m.SnapshotID()
	case document.FieldURL:
		return m.URL()
	case document.FieldCanonicalURL:
		return m.CanonicalURL()
	case document.FieldTitle:
		return m.Title()
	case document.FieldAuthor:
		return m.Author()
	case document.FieldPublishedAt:
		return m.PublishedAt()
	case document.FieldModifiedAt:
		return m.ModifiedAt()
	case document.FieldCleanText:
		return m.CleanText()
	case document.FieldLanguage:
		return m.Language()
	case document.FieldContentHash:
		return m.ContentHash()
	case document.FieldSimhash:
		return m.Simhash()
	case document.FieldVersionNo:
		return m.VersionNo()
	case document.FieldLane:
		return m.Lane()
	case document.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *DocumentMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case document.FieldSourceID:
		return m.OldSourceID(ctx)
	case document.FieldSnapshotID:
		return m.OldSnapshotID(ctx)
	case document.FieldURL:
		return m.OldURL(ctx)
	case document.FieldCanonicalURL:
		return m.OldCanonicalURL(ctx)
	case document.FieldTitle:
		return m.OldTitle(ctx)
	case document.FieldAuthor:
		return m.OldAuthor(ctx)
	case document.FieldPublishedAt:
		return m.OldPublishedAt(ctx)
	case document.FieldModifiedAt:
		return m.OldModifiedAt(ctx)
	case document.FieldCleanText:
		return m.OldCleanText(ctx)
	case document.FieldLanguage:
		return m.OldLanguage(ctx)
	case document.FieldContentHash:
		return m.OldContentHash(ctx)
	case document.FieldSimhash:
		return m.OldSimhash(ctx)
	case document.FieldVersionNo:
		return m.OldVersionNo(ctx)
	case document.FieldLane:
		return m.OldLane(ctx)
	case document.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Document field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DocumentMutation) SetField(name string, value ent.Value) error {
	switch name {
	case document.FieldSourceID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSourceID(v)
		return nil
	case document.FieldSnapshotID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSnapshotID(v)
		return nil
	case document.FieldURL:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetURL(v)
		return nil
	case document.FieldCanonicalURL:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCanonicalURL(v)
		return nil
	case document.FieldTitle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTitle(v)
		return nil
	case document.FieldAuthor:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAuthor(v)
		return nil
	case document.FieldPublishedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPublishedAt(v)
		return nil
	case document.FieldModifiedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetModifiedAt(v)
		return nil
	case document.FieldCleanText:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCleanText(v)
		return nil
	case document.FieldLanguage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLanguage(v)
		return nil
	case document.FieldContentHash:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContentHash(v)
		return nil
	case document.FieldSimhash:
		v, ok := value.(uint64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSimhash(v)
		return nil
	case document.FieldVersionNo:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVersionNo(v)
		return nil
	case document.FieldLane:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLane(v)
		return nil
	case document.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Document field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *DocumentMutation) AddedFields() []string {
	var fields []string
	if m.addsnapshot_id != nil {
		fields = append(fields, document.FieldSnapshotID)
	}
	if m.addsimhash != nil {
		fields = append(fields, document.FieldSimhash)
	}
	if m.addversion_no != nil {
		fields = append(fields, document.FieldVersionNo)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *DocumentMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case document.FieldSnapshotID:
		return m.AddedSnapshotID()
	case document.FieldSimhash:
		return m.AddedSimhash()
	case document.FieldVersionNo:
		return m.AddedVersionNo()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DocumentMutation) AddField(name string, value ent.Value) error {
	switch name {
	case document.FieldSnapshotID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSnapshotID(v)
		return nil
	case document.FieldSimhash:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSimhash(v)
		return nil
	case document.FieldVersionNo:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddVersionNo(v)
		return nil
	}
	return fmt.Errorf("unknown Document numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *DocumentMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(document.FieldSnapshotID) {
		fields = append(fields, document.FieldSnapshotID)
	}
	if m.FieldCleared(document.FieldCanonicalURL) {
		fields = append(fields, document.FieldCanonicalURL)
	}
	if m.FieldCleared(document.FieldTitle) {
		fields = append(fields, document.FieldTitle)
	}
	if m.FieldCleared(document.FieldAuthor) {
		fields = append(fields, document.FieldAuthor)
	}
	if m.FieldCleared(document.FieldPublishedAt) {
		fields = append(fields, document.FieldPublishedAt)
	}
	if m.FieldCleared(document.FieldModifiedAt) {
		fields = append(fields, document.FieldModifiedAt)
	}
	if m.FieldCleared(document.FieldLanguage) {
		fields = append(fields, document.FieldLanguage)
	}
	if m.FieldCleared(document.FieldSimhash) {
		fields = append(fields, document.FieldSimhash)
	}
	if m.FieldCleared(document.FieldLane) {
		fields = append(fields, document.FieldLane)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *DocumentMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *DocumentMutation) ClearField(name string) error {
	switch name {
	case document.FieldSnapshotID:
		m.ClearSnapshotID()
		return nil
	case document.FieldCanonicalURL:
		m.ClearCanonicalURL()
		return nil
	case document.FieldTitle:
		m.ClearTitle()
		return nil
	case document.FieldAuthor:
		m.ClearAuthor()
		return nil
	case document.FieldPublishedAt:
		m.ClearPublishedAt()
		return nil
	case document.FieldModifiedAt:
		m.ClearModifiedAt()
		return nil
	case document.FieldLanguage:
		m.ClearLanguage()
		return nil
	case document.FieldSimhash:
		m.ClearSimhash()
		return nil
	case document.FieldLane:
		m.ClearLane()
		return nil
	}
	return fmt.Errorf("unknown Document nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *DocumentMutation) ResetField(name string) error {
	switch name {
	case document.FieldSourceID:
		m.ResetSourceID()
		return nil
	case document.FieldSnapshotID:
		m.ResetSnapshotID()
		return nil
	case document.FieldURL:
		m.ResetURL()
		return nil
	case document.FieldCanonicalURL:
		m.ResetCanonicalURL()
		return nil
	case document.FieldTitle:
		m.ResetTitle()
		return nil
	case document.FieldAuthor:
		m.ResetAuthor()
		return nil
	case document.FieldPublishedAt:
		m.ResetPublishedAt()
		return nil
	case document.FieldModifiedAt:
		m.ResetModifiedAt()
		return nil
	case document.FieldCleanText:
		m.ResetCleanText()
		return nil
	case document.FieldLanguage:
		m.ResetLanguage()
		return nil
	case document.FieldContentHash:
		m.ResetContentHash()
		return nil
	case document.FieldSimhash:
		m.ResetSimhash()
		return nil
	case document.FieldVersionNo:
		m.ResetVersionNo()
		return nil
	case document.FieldLane:
		m.ResetLane()
		return nil
	case document.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Document field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *DocumentMutation) AddedEdges() []string {
	edges := make([]string, 0, 4)
	if m.source != nil {
		edges = append(edges, document.EdgeSource)
	}
	if m.anchors != nil {
		edges = append(edges, document.EdgeAnchors)
	}
	if m.evidence != nil {
		edges = append(edges, document.EdgeEvidence)
	}
	if m.mentions != nil {
		edges = append(edges, document.EdgeMentions)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *DocumentMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case document.EdgeSource:
		if id := m.source; id != nil {
			return []ent.Value{*id}
		}
	case document.EdgeAnchors:
		ids := make([]ent.Value, 0, len(m.anchors))
		for id := range m.anchors {
			ids = append(ids, id)
		}
		return ids
	case document.EdgeEvidence:
		if id := m.evidence; id != nil {
			return []ent.Value{*id}
		}
	case document.EdgeMentions:
		ids := make([]ent.Value, 0, len(m.mentions))
		for id := range m.mentions {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *DocumentMutation) RemovedEdges() []string {
	edges := make([]string, 0, 4)
	if m.removedanchors != nil {
		edges = append(edges, document.EdgeAnchors)
	}
	if m.removedmentions != nil {
		edges = append(edges, document.EdgeMentions)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *DocumentMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case document.EdgeAnchors:
		ids := make([]ent.Value, 0, len(m.removedanchors))
		for id := range m.removedanchors {
			ids = append(ids, id)
		}
		return ids
	case document.EdgeMentions:
		ids := make([]ent.Value, 0, len(m.removedmentions))
		for id := range m.removedmentions {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *DocumentMutation) ClearedEdges() []string {
	edges := make([]string, 0, 4)
	if m.clearedsource {
		edges = append(edges, document.EdgeSource)
	}
	if m.clearedanchors {
		edges = append(edges, document.EdgeAnchors)
	}
	if m.clearedevidence {
		edges = append(edges, document.EdgeEvidence)
	}
	if m.clearedmentions {
		edges = append(edges, document.EdgeMentions)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *DocumentMutation) EdgeCleared(name string) bool {
	switch name {
	case document.EdgeSource:
		return m.clearedsource
	case document.EdgeAnchors:
		return m.clearedanchors
	case document.EdgeEvidence:
		return m.clearedevidence
	case document.EdgeMentions:
		return m.clearedmentions
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *DocumentMutation) ClearEdge(name string) error {
	switch name {
	case document.EdgeSource:
		m.ClearSource()
		return nil
	case document.EdgeEvidence:
		m.ClearEvidence()
		return nil
	}
	return fmt.Errorf("unknown Document unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *DocumentMutation) ResetEdge(name string) error {
	switch name {
	case document.EdgeSource:
		m.ResetSource()
		return nil
	case document.EdgeAnchors:
		m.ResetAnchors()
		return nil
	case document.EdgeEvidence:
		m.ResetEvidence()
		return nil
	case document.EdgeMentions:
		m.ResetMentions()
		return nil
	}
	return fmt.Errorf("unknown Document edge %s", name)
}

// EntityMentionMutation represents an operation that mutates the EntityMention nodes in the graph.
type EntityMentionMutation struct {
	config
	op              Op
	typ             string
	id              *int
	entity_key      *string
	label           *entitymention.Label
	span            *string
	evidence_ptr    *string
	confidence      *float64
	addconfidence   *float64
	clearedFields   map[string]struct{}
	document        *int
	cleareddocument bool
	done            bool
	oldValue        func(context.Context) (*EntityMention, error)
	predicates      []predicate.EntityMention
}

var _ ent.Mutation = (*EntityMentionMutation)(nil)

// entitymentionOption allows management of the mutation configuration using functional options.
type entitymentionOption func(*EntityMentionMutation)

// newEntityMentionMutation creates new mutation for the EntityMention entity.
func newEntityMentionMutation(c config, op Op, opts ...entitymentionOption) *EntityMentionMutation {
	m := &EntityMentionMutation{
		config:        c,
		op:            op,
		typ:           TypeEntityMention,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withEntityMentionID sets the ID field of the mutation.
func withEntityMentionID(id int) entitymentionOption {
	return func(m *EntityMentionMutation) {
		var (
			err   error
			once  sync.Once
			value *EntityMention
		)
		m.oldValue = func(ctx context.Context) (*EntityMention, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().EntityMention.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withEntityMention sets the old EntityMention of the mutation.
func withEntityMention(node *EntityMention) entitymentionOption {
	return func(m *EntityMentionMutation) {
		m.oldValue = func(context.Context) (*EntityMention, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m EntityMentionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m EntityMentionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *EntityMentionMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *EntityMentionMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().EntityMention.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetDocID sets the "doc_id" field.
func (m *EntityMentionMutation) SetDocID(i int) {
	m.document = &i
}

// DocID returns the value of the "doc_id" field in the mutation.
func (m *EntityMentionMutation) DocID() (r int, exists bool) {
	v := m.document
	if v == nil {
		return
	}
	return *v, true
}

// OldDocID returns the old "doc_id" field's value of the EntityMention entity.
// If the EntityMention object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EntityMentionMutation) OldDocID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDocID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDocID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDocID: %w", err)
	}
	return oldValue.DocID, nil
}

// ResetDocID resets all changes to the "doc_id" field.
func (m *EntityMentionMutation) ResetDocID() {
	m.document = nil
}

// SetEntityKey sets the "entity_key" field.
func (m *EntityMentionMutation) SetEntityKey(s string) {
	m.entity_key = &s
}

// EntityKey returns the value of the "entity_key" field in the mutation.
func (m *EntityMentionMutation) EntityKey() (r string, exists bool) {
	v := m.entity_key
	if v == nil {
		return
	}
	return *v, true
}

// OldEntityKey returns the old "entity_key" field's value of the EntityMention entity.
// If the EntityMention object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EntityMentionMutation) OldEntityKey(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEntityKey is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEntityKey requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEntityKey: %w", err)
	}
	return oldValue.EntityKey, nil
}

// ResetEntityKey resets all changes to the "entity_key" field.
func (m *EntityMentionMutation) ResetEntityKey() {
	m.entity_key = nil
}

// SetLabel sets the "label" field.
func (m *EntityMentionMutation) SetLabel(e entitymention.Label) {
	m.label = &e
}

// Label returns the value of the "label" field in the mutation.
func (m *EntityMentionMutation) Label() (r entitymention.Label, exists bool) {
	v := m.label
	if v == nil {
		return
	}
	return *v, true
}

// OldLabel returns the old "label" field's value of the EntityMention entity.
// If the EntityMention object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EntityMentionMutation) OldLabel(ctx context.Context) (v entitymention.Label, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLabel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLabel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLabel: %w", err)
	}
	return oldValue.Label, nil
}

// ResetLabel resets all changes to the "label" field.
func (m *EntityMentionMutation) ResetLabel() {
	m.label = nil
}

// SetSpan sets the "span" field.
func (m *EntityMentionMutation) SetSpan(s string) {
	m.span = &s
}

// Span returns the value of the "span" field in the mutation.
func (m *EntityMentionMutation) Span() (r string, exists bool) {
	v := m.span
	if v == nil {
		return
	}
	return *v, true
}

// OldSpan returns the old "span" field's value of the EntityMention entity.
// If the EntityMention object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EntityMentionMutation) OldSpan(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSpan is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSpan requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSpan: %w", err)
	}
	return oldValue.Span, nil
}

// ClearSpan clears the value of the "span" field.
func (m *EntityMentionMutation) ClearSpan() {
	m.span = nil
	m.clearedFields[entitymention.FieldSpan] = struct{}{}
}

// SpanCleared returns if the "span" field was cleared in this mutation.
func (m *EntityMentionMutation) SpanCleared() bool {
	_, ok := m.clearedFields[entitymention.FieldSpan]
	return ok
}

// ResetSpan resets all changes to the "span" field.
func (m *EntityMentionMutation) ResetSpan() {
	m.span = nil
	delete(m.clearedFields, entitymention.FieldSpan)
}

// SetEvidencePtr sets the "evidence_ptr" field.
func (m *EntityMentionMutation) SetEvidencePtr(s string) {
	m.evidence_ptr = &s
}

// EvidencePtr returns the value of the "evidence_ptr" field in the mutation.
func (m *EntityMentionMutation) EvidencePtr() (r string, exists bool) {
	v := m.evidence_ptr
	if v == nil {
		return
	}
	return *v, true
}

// OldEvidencePtr returns the old "evidence_ptr" field's value of the EntityMention entity.
// If the EntityMention object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EntityMentionMutation) OldEvidencePtr(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEvidencePtr is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEvidencePtr requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEvidencePtr: %w", err)
	}
	return oldValue.EvidencePtr, nil
}

// ClearEvidencePtr clears the value of the "evidence_ptr" field.
func (m *EntityMentionMutation) ClearEvidencePtr() {
	m.evidence_ptr = nil
	m.clearedFields[entitymention.FieldEvidencePtr] = struct{}{}
}

// EvidencePtrCleared returns if the "evidence_ptr" field was cleared in this mutation.
func (m *EntityMentionMutation) EvidencePtrCleared() bool {
	_, ok := m.clearedFields[entitymention.FieldEvidencePtr]
	return ok
}

// ResetEvidencePtr resets all changes to the "evidence_ptr" field.
func (m *EntityMentionMutation) ResetEvidencePtr() {
	m.evidence_ptr = nil
	delete(m.clearedFields, entitymention.FieldEvidencePtr)
}

// SetConfidence sets the "confidence" field.
func (m *EntityMentionMutation) SetConfidence(f float64) {
	m.confidence = &f
	m.addconfidence = nil
}

// Confidence returns the value of the "confidence" field in the mutation.
func (m *EntityMentionMutation) Confidence() (r float64, exists bool) {
	v := m.confidence
	if v == nil {
		return
	}
	return *v, true
}

// OldConfidence returns the old "confidence" field's value of the EntityMention entity.
// If the EntityMention object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EntityMentionMutation) OldConfidence(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConfidence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConfidence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConfidence: %w", err)
	}
	return oldValue.Confidence, nil
}

// AddConfidence adds f to the "confidence" field.
func (m *EntityMentionMutation) AddConfidence(f float64) {
	if m.addconfidence != nil {
		*m.addconfidence += f
	} else {
		m.addconfidence = &f
	}
}

// AddedConfidence returns the value that was added to the "confidence" field in this mutation.
func (m *EntityMentionMutation) AddedConfidence() (r float64, exists bool) {
	v := m.addconfidence
	if v == nil {
		return
	}
	return *v, true
}

// ResetConfidence resets all changes to the "confidence" field.
func (m *EntityMentionMutation) ResetConfidence() {
	m.confidence = nil
	m.addconfidence = nil
}

// SetDocumentID sets the "document" edge to the Document entity by id.
func (m *EntityMentionMutation) SetDocumentID(id int) {
	m.document = &id
}

// ClearDocument clears the "document" edge to the Document entity.
func (m *EntityMentionMutation) ClearDocument() {
	m.cleareddocument = true
	m.clearedFields[entitymention.FieldDocID] = struct{}{}
}

// DocumentCleared reports if the "document" edge to the Document entity was cleared.
func (m *EntityMentionMutation) DocumentCleared() bool {
	return m.cleareddocument
}

// DocumentID returns the "document" edge ID in the mutation.
func (m *EntityMentionMutation) DocumentID() (id int, exists bool) {
	if m.document != nil {
		return *m.document, true
	}
	return
}

// DocumentIDs returns the "document" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// DocumentID instead. It exists only for internal usage by the builders.
func (m *EntityMentionMutation) DocumentIDs() (ids []int) {
	if id := m.document; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetDocument resets all changes to the "document" edge.
func (m *EntityMentionMutation) ResetDocument() {
	m.document = nil
	m.cleareddocument = false
}

// Where appends a list predicates to the EntityMentionMutation builder.
func (m *EntityMentionMutation) Where(ps ...predicate.EntityMention) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the EntityMentionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *EntityMentionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.EntityMention, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *EntityMentionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *EntityMentionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (EntityMention).
func (m *EntityMentionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *EntityMentionMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.document != nil {
		fields = append(fields, entitymention.FieldDocID)
	}
	if m.entity_key != nil {
		fields = append(fields, entitymention.FieldEntityKey)
	}
	if m.label != nil {
		fields = append(fields, entitymention.FieldLabel)
	}
	if m.span != nil {
		fields = append(fields, entitymention.FieldSpan)
	}
	if m.evidence_ptr != nil {
		fields = append(fields, entitymention.FieldEvidencePtr)
	}
	if m.confidence != nil {
		fields = append(fields, entitymention.FieldConfidence)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *EntityMentionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case entitymention.FieldDocID:
		return m.DocID()
	case entitymention.FieldEntityKey:
		return m.EntityKey()
	case entitymention.FieldLabel:
		return m.Label()
	case entitymention.FieldSpan:
		return m.Span()
	case entitymention.FieldEvidencePtr:
		return m.EvidencePtr()
	case entitymention.FieldConfidence:
		return m.Confidence()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *EntityMentionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case entitymention.FieldDocID:
		return m.OldDocID(ctx)
	case entitymention.FieldEntityKey:
		return m.OldEntityKey(ctx)
	case entitymention.FieldLabel:
		return m.OldLabel(ctx)
	case entitymention.FieldSpan:
		return m.OldSpan(ctx)
	case entitymention.FieldEvidencePtr:
		return m.OldEvidencePtr(ctx)
	case entitymention.FieldConfidence:
		return m.OldConfidence(ctx)
	}
	return nil, fmt.Errorf("unknown EntityMention field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EntityMentionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case entitymention.FieldDocID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDocID(v)
		return nil
	case entitymention.FieldEntityKey:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEntityKey(v)
		return nil
	case entitymention.FieldLabel:
		v, ok := value.(entitymention.Label)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLabel(v)
		return nil
	case entitymention.FieldSpan:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSpan(v)
		return nil
	case entitymention.FieldEvidencePtr:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEvidencePtr(v)
		return nil
	case entitymention.FieldConfidence:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConfidence(v)
		return nil
	}
	return fmt.Errorf("unknown EntityMention field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *EntityMentionMutation) AddedFields() []string {
	var fields []string
	if m.addconfidence != nil {
		fields = append(fields, entitymention.FieldConfidence)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *EntityMentionMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case entitymention.FieldConfidence:
		return m.AddedConfidence()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EntityMentionMutation) AddField(name string, value ent.Value) error {
	switch name {
	case entitymention.FieldConfidence:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddConfidence(v)
		return nil
	}
	return fmt.Errorf("unknown EntityMention numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *EntityMentionMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(entitymention.FieldSpan) {
		fields = append(fields, entitymention.FieldSpan)
	}
	if m.FieldCleared(entitymention.FieldEvidencePtr) {
		fields = append(fields, entitymention.FieldEvidencePtr)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *EntityMentionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *EntityMentionMutation) ClearField(name string) error {
	switch name {
	case entitymention.FieldSpan:
		m.ClearSpan()
		return nil
	case entitymention.FieldEvidencePtr:
		m.ClearEvidencePtr()
		return nil
	}
	return fmt.Errorf("unknown EntityMention nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *EntityMentionMutation) ResetField(name string) error {
	switch name {
	case entitymention.FieldDocID:
		m.ResetDocID()
		return nil
	case entitymention.FieldEntityKey:
		m.ResetEntityKey()
		return nil
	case entitymention.FieldLabel:
		m.ResetLabel()
		return nil
	case entitymention.FieldSpan:
		m.ResetSpan()
		return nil
	case entitymention.FieldEvidencePtr:
		m.ResetEvidencePtr()
		return nil
	case entitymention.FieldConfidence:
		m.ResetConfidence()
		return nil
	}
	return fmt.Errorf("unknown EntityMention field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *EntityMentionMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.document != nil {
		edges = append(edges, entitymention.EdgeDocument)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *EntityMentionMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case entitymention.EdgeDocument:
		if id := m.document; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *EntityMentionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *EntityMentionMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *EntityMentionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.cleareddocument {
		edges = append(edges, entitymention.EdgeDocument)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *EntityMentionMutation) EdgeCleared(name string) bool {
	switch name {
	case entitymention.EdgeDocument:
		return m.cleareddocument
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *EntityMentionMutation) ClearEdge(name string) error {
	switch name {
	case entitymention.EdgeDocument:
		m.ClearDocument()
		return nil
	}
	return fmt.Errorf("unknown EntityMention unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *EntityMentionMutation) ResetEdge(name string) error {
	switch name {
	case entitymention.EdgeDocument:
		m.ResetDocument()
		return nil
	}
	return fmt.Errorf("unknown EntityMention edge %s", name)
}

// EventMutation represents an operation that mutates the Event nodes in the graph.
type EventMutation struct {
	config
	op                    Op
	typ                   string
	id                    *int
	canonical_event_id    *int
	addcanonical_event_id *int
	status                *event.Status
	lane                  *string
	summary               *string
	flags_json            *[]string
	appendflags_json      []string
	score_plantao         *float64
	addscore_plantao      *float64
	first_seen_at         *time.Time
	last_seen_at          *time.Time
	updated_at            *time.Time
	created_at            *time.Time
	clearedFields         map[string]struct{}
	done                  bool
	oldValue              func(context.Context) (*Event, error)
	predicates            []predicate.Event
}

var _ ent.Mutation = (*EventMutation)(nil)

// eventOption allows management of the mutation configuration using functional options.
type eventOption func(*EventMutation)

// newEventMutation creates new mutation for the Event entity.
func newEventMutation(c config, op Op, opts ...eventOption) *EventMutation {
	m := &EventMutation{
		config:        c,
		op:            op,
		typ:           TypeEvent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withEventID sets the ID field of the mutation.
func withEventID(id int) eventOption {
	return func(m *EventMutation) {
		var (
			err   error
			once  sync.Once
			value *Event
		)
		m.oldValue = func(ctx context.Context) (*Event, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Event.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withEvent sets the old Event of the mutation.
func withEvent(node *Event) eventOption {
	return func(m *EventMutation) {
		m.oldValue = func(context.Context) (*Event, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m EventMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m EventMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *EventMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *EventMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Event.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCanonicalEventID sets the "canonical_event_id" field.
func (m *EventMutation) SetCanonicalEventID(i int) {
	m.canonical_event_id = &i
	m.addcanonical_event_id = nil
}

// CanonicalEventID returns the value of the "canonical_event_id" field in the mutation.
func (m *EventMutation) CanonicalEventID() (r int, exists bool) {
	v := m.canonical_event_id
	if v == nil {
		return
	}
	return *v, true
}

// OldCanonicalEventID returns the old "canonical_event_id" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldCanonicalEventID(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCanonicalEventID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCanonicalEventID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCanonicalEventID: %w", err)
	}
	return oldValue.CanonicalEventID, nil
}

// AddCanonicalEventID adds i to the "canonical_event_id" field.
func (m *EventMutation) AddCanonicalEventID(i int) {
	if m.addcanonical_event_id != nil {
		*m.addcanonical_event_id += i
	} else {
		m.addcanonical_event_id = &i
	}
}

// AddedCanonicalEventID returns the value that was added to the "canonical_event_id" field in this mutation.
func (m *EventMutation) AddedCanonicalEventID() (r int, exists bool) {
	v := m.addcanonical_event_id
	if v == nil {
		return
	}
	return *v, true
}

// ClearCanonicalEventID clears the value of the "canonical_event_id" field.
func (m *EventMutation) ClearCanonicalEventID() {
	m.canonical_event_id = nil
	m.addcanonical_event_id = nil
	m.clearedFields[event.FieldCanonicalEventID] = struct{}{}
}

// CanonicalEventIDCleared returns if the "canonical_event_id" field was cleared in this mutation.
func (m *EventMutation) CanonicalEventIDCleared() bool {
	_, ok := m.clearedFields[event.FieldCanonicalEventID]
	return ok
}

// ResetCanonicalEventID resets all changes to the "canonical_event_id" field.
func (m *EventMutation) ResetCanonicalEventID() {
	m.canonical_event_id = nil
	m.addcanonical_event_id = nil
	delete(m.clearedFields, event.FieldCanonicalEventID)
}

// SetStatus sets the "status" field.
func (m *EventMutation) SetStatus(e event.Status) {
	m.status = &e
}

// Status returns the value of the "status" field in the mutation.
func (m *EventMutation) Status() (r event.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldStatus(ctx context.Context) (v event.Status, err error) {
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
func (m *EventMutation) ResetStatus() {
	m.status = nil
}

// SetLane sets the "lane" field.
func (m *EventMutation) SetLane(s string) {
	m.lane = &s
}

// Lane returns the value of the "lane" field in the mutation.
func (m *EventMutation) Lane() (r string, exists bool) {
	v := m.lane
	if v == nil {
		return
	}
	return *v, true
}

// OldLane returns the old "lane" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldLane(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLane is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLane requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLane: %w", err)
	}
	return oldValue.Lane, nil
}

// ClearLane clears the value of the "lane" field.
func (m *EventMutation) ClearLane() {
	m.lane = nil
	m.clearedFields[event.FieldLane] = struct{}{}
}

// LaneCleared returns if the "lane" field was cleared in this mutation.
func (m *EventMutation) LaneCleared() bool {
	_, ok := m.clearedFields[event.FieldLane]
	return ok
}

// ResetLane resets all changes to the "lane" field.
func (m *EventMutation) ResetLane() {
	m.lane = nil
	delete(m.clearedFields, event.FieldLane)
}

// SetSummary sets the "summary" field.
func (m *EventMutation) SetSummary(s string) {
	m.summary = &s
}

// Summary returns the value of the "summary" field in the mutation.
func (m *EventMutation) Summary() (r string, exists bool) {
	v := m.summary
	if v == nil {
		return
	}
	return *v, true
}

// OldSummary returns the old "summary" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldSummary(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSummary is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSummary requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSummary: %w", err)
	}
	return oldValue.Summary, nil
}

// ClearSummary clears the value of the "summary" field.
func (m *EventMutation) ClearSummary() {
	m.summary = nil
	m.clearedFields[event.FieldSummary] = struct{}{}
}

// SummaryCleared returns if the "summary" field was cleared in this mutation.
func (m *EventMutation) SummaryCleared() bool {
	_, ok := m.clearedFields[event.FieldSummary]
	return ok
}

// ResetSummary resets all changes to the "summary" field.
func (m *EventMutation) ResetSummary() {
	m.summary = nil
	delete(m.clearedFields, event.FieldSummary)
}

// SetFlagsJSON sets the "flags_json" field.
func (m *EventMutation) SetFlagsJSON(s []string) {
	m.flags_json = &s
	m.appendflags_json = nil
}

// FlagsJSON returns the value of the "flags_json" field in the mutation.
func (m *EventMutation) FlagsJSON() (r []string, exists bool) {
	v := m.flags_json
	if v == nil {
		return
	}
	return *v, true
}

// OldFlagsJSON returns the old "flags_json" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldFlagsJSON(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFlagsJSON is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFlagsJSON requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFlagsJSON: %w", err)
	}
	return oldValue.FlagsJSON, nil
}

// AppendFlagsJSON adds s to the "flags_json" field.
func (m *EventMutation) AppendFlagsJSON(s []string) {
	m.appendflags_json = append(m.appendflags_json, s...)
}

// AppendedFlagsJSON returns the list of values that were appended to the "flags_json" field in this mutation.
func (m *EventMutation) AppendedFlagsJSON() ([]string, bool) {
	if len(m.appendflags_json) == 0 {
		return nil, false
	}
	return m.appendflags_json, true
}

// ClearFlagsJSON clears the value of the "flags_json" field.
func (m *EventMutation) ClearFlagsJSON() {
	m.flags_json = nil
	m.appendflags_json = nil
	m.clearedFields[event.FieldFlagsJSON] = struct{}{}
}

// FlagsJSONCleared returns if the "flags_json" field was cleared in this mutation.
func (m *EventMutation) FlagsJSONCleared() bool {
	_, ok := m.clearedFields[event.FieldFlagsJSON]
	return ok
}

// ResetFlagsJSON resets all changes to the "flags_json" field.
func (m *EventMutation) ResetFlagsJSON() {
	m.flags_json = nil
	m.appendflags_json = nil
	delete(m.clearedFields, event.FieldFlagsJSON)
}

// SetScorePlantao sets the "score_plantao" field.
func (m *EventMutation) SetScorePlantao(f float64) {
	m.score_plantao = &f
	m.addscore_plantao = nil
}

// ScorePlantao returns the value of the "score_plantao" field in the mutation.
func (m *EventMutation) ScorePlantao() (r float64, exists bool) {
	v := m.score_plantao
	if v == nil {
		return
	}
	return *v, true
}

// OldScorePlantao returns the old "score_plantao" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldScorePlantao(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldScorePlantao is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldScorePlantao requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldScorePlantao: %w", err)
	}
	return oldValue.ScorePlantao, nil
}

// AddScorePlantao adds f to the "score_plantao" field.
func (m *EventMutation) AddScorePlantao(f float64) {
	if m.addscore_plantao != nil {
		*m.addscore_plantao += f
	} else {
		m.addscore_plantao = &f
	}
}

// AddedScorePlantao returns the value that was added to the "score_plantao" field in this mutation.
func (m *EventMutation) AddedScorePlantao() (r float64, exists bool) {
	v := m.addscore_plantao
	if v == nil {
		return
	}
	return *v, true
}

// ResetScorePlantao resets all changes to the "score_plantao" field.
func (m *EventMutation) ResetScorePlantao() {
	m.score_plantao = nil
	m.addscore_plantao = nil
}

// SetFirstSeenAt sets the "first_seen_at" field.
func (m *EventMutation) SetFirstSeenAt(t time.Time) {
	m.first_seen_at = &t
}

// FirstSeenAt returns the value of the "first_seen_at" field in the mutation.
func (m *EventMutation) FirstSeenAt() (r time.Time, exists bool) {
	v := m.first_seen_at
	if v == nil {
		return
	}
	return *v, true
}

// OldFirstSeenAt returns the old "first_seen_at" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldFirstSeenAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFirstSeenAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFirstSeenAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFirstSeenAt: %w", err)
	}
	return oldValue.FirstSeenAt, nil
}

// ResetFirstSeenAt resets all changes to the "first_seen_at" field.
func (m *EventMutation) ResetFirstSeenAt() {
	m.first_seen_at = nil
}

// SetLastSeenAt sets the "last_seen_at" field.
func (m *EventMutation) SetLastSeenAt(t time.Time) {
	m.last_seen_at = &t
}

// LastSeenAt returns the value of the "last_seen_at" field in the mutation.
func (m *EventMutation) LastSeenAt() (r time.Time, exists bool) {
	v := m.last_seen_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLastSeenAt returns the old "last_seen_at" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldLastSeenAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastSeenAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastSeenAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastSeenAt: %w", err)
	}
	return oldValue.LastSeenAt, nil
}

// ResetLastSeenAt resets all changes to the "last_seen_at" field.
func (m *EventMutation) ResetLastSeenAt() {
	m.last_seen_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *EventMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *EventMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *EventMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *EventMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *EventMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *EventMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the EventMutation builder.
func (m *EventMutation) Where(ps ...predicate.Event) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the EventMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *EventMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Event, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *EventMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *EventMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Event).
func (m *EventMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *EventMutation) Fields() []string {
	fields := make([]string, 0, 10)
	if m.canonical_event_id != nil {
		fields = append(fields, event.FieldCanonicalEventID)
	}
	if m.status != nil {
		fields = append(fields, event.FieldStatus)
	}
	if m.lane != nil {
		fields = append(fields, event.FieldLane)
	}
	if m.summary != nil {
		fields = append(fields, event.FieldSummary)
	}
	if m.flags_json != nil {
		fields = append(fields, event.FieldFlagsJSON)
	}
	if m.score_plantao != nil {
		fields = append(fields, event.FieldScorePlantao)
	}
	if m.first_seen_at != nil {
		fields = append(fields, event.FieldFirstSeenAt)
	}
	if m.last_seen_at != nil {
		fields = append(fields, event.FieldLastSeenAt)
	}
	if m.updated_at != nil {
		fields = append(fields, event.FieldUpdatedAt)
	}
	if m.created_at != nil {
		fields = append(fields, event.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *EventMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case event.FieldCanonicalEventID:
		return m.CanonicalEventID()
	case event.FieldStatus:
		return m.Status()
	case event.FieldLane:
		return m.Lane()
	case event.FieldSummary:
		return m.Summary()
	case event.FieldFlagsJSON:
		return m.FlagsJSON()
	case event.FieldScorePlantao:
		return m.ScorePlantao()
	case event.FieldFirstSeenAt:
		return m.FirstSeenAt()
	case event.FieldLastSeenAt:
		return m.LastSeenAt()
	case event.FieldUpdatedAt:
		return m.UpdatedAt()
	case event.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *EventMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case event.FieldCanonicalEventID:
		return m.OldCanonicalEventID(ctx)
	case event.FieldStatus:
		return m.OldStatus(ctx)
	case event.FieldLane:
		return m.OldLane(ctx)
	case event.FieldSummary:
		return m.OldSummary(ctx)
	case event.FieldFlagsJSON:
		return m.OldFlagsJSON(ctx)
	case event.FieldScorePlantao:
		return m.OldScorePlantao(ctx)
	case event.FieldFirstSeenAt:
		return m.OldFirstSeenAt(ctx)
	case event.FieldLastSeenAt:
		return m.OldLastSeenAt(ctx)
	case event.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case event.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Event field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EventMutation) SetField(name string, value ent.Value) error {
	switch name {
	case event.FieldCanonicalEventID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCanonicalEventID(v)
		return nil
	case event.FieldStatus:
		v, ok := value.(event.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case event.FieldLane:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLane(v)
		return nil
	case event.FieldSummary:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSummary(v)
		return nil
	case event.FieldFlagsJSON:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFlagsJSON(v)
		return nil
	case event.FieldScorePlantao:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetScorePlantao(v)
		return nil
	case event.FieldFirstSeenAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFirstSeenAt(v)
		return nil
	case event.FieldLastSeenAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastSeenAt(v)
		return nil
	case event.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case event.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Event field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *EventMutation) AddedFields() []string {
	var fields []string
	if m.addcanonical_event_id != nil {
		fields = append(fields, event.FieldCanonicalEventID)
	}
	if m.addscore_plantao != nil {
		fields = append(fields, event.FieldScorePlantao)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *EventMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case event.FieldCanonicalEventID:
		return m.AddedCanonicalEventID()
	case event.FieldScorePlantao:
		return m.AddedScorePlantao()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EventMutation) AddField(name string, value ent.Value) error {
	switch name {
	case event.FieldCanonicalEventID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCanonicalEventID(v)
		return nil
	case event.FieldScorePlantao:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddScorePlantao(v)
		return nil
	}
	return fmt.Errorf("unknown Event numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *EventMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(event.FieldCanonicalEventID) {
		fields = append(fields, event.FieldCanonicalEventID)
	}
	if m.FieldCleared(event.FieldLane) {
		fields = append(fields, event.FieldLane)
	}
	if m.FieldCleared(event.FieldSummary) {
		fields = append(fields, event.FieldSummary)
	}
	if m.FieldCleared(event.FieldFlagsJSON) {
		fields = append(fields, event.FieldFlagsJSON)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *EventMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *EventMutation) ClearField(name string) error {
	switch name {
	case event.FieldCanonicalEventID:
		m.ClearCanonicalEventID()
		return nil
	case event.FieldLane:
		m.ClearLane()
		return nil
	case event.FieldSummary:
		m.ClearSummary()
		return nil
	case event.FieldFlagsJSON:
		m.ClearFlagsJSON()
		return nil
	}
	return fmt.Errorf("unknown Event nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *EventMutation) ResetField(name string) error {
	switch name {
	case event.FieldCanonicalEventID:
		m.ResetCanonicalEventID()
		return nil
	case event.FieldStatus:
		m.ResetStatus()
		return nil
	case event.FieldLane:
		m.ResetLane()
		return nil
	case event.FieldSummary:
		m.ResetSummary()
		return nil
	case event.FieldFlagsJSON:
		m.ResetFlagsJSON()
		return nil
	case event.FieldScorePlantao:
		m.ResetScorePlantao()
		return nil
	case event.FieldFirstSeenAt:
		m.ResetFirstSeenAt()
		return nil
	case event.FieldLastSeenAt:
		m.ResetLastSeenAt()
		return nil
	case event.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case event.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Event field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *EventMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *EventMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *EventMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *EventMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *EventMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *EventMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *EventMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Event unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *EventMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Event edge %s", name)
}

// EventAlertStateMutation represents an operation that mutates the EventAlertState nodes in the graph.
type EventAlertStateMutation struct {
	config
	op              Op
	typ             string
	id              *int
	event_id        *int
	addevent_id     *int
	last_alert_hash *string
	last_alert_at   *time.Time
	cooldown_until  *time.Time
	clearedFields   map[string]struct{}
	done            bool
	oldValue        func(context.Context) (*EventAlertState, error)
	predicates      []predicate.EventAlertState
}

var _ ent.Mutation = (*EventAlertStateMutation)(nil)

// eventalertstateOption allows management of the mutation configuration using functional options.
type eventalertstateOption func(*EventAlertStateMutation)

// newEventAlertStateMutation creates new mutation for the EventAlertState entity.
func newEventAlertStateMutation(c config, op Op, opts ...eventalertstateOption) *EventAlertStateMutation {
	m := &EventAlertStateMutation{
		config:        c,
		op:            op,
		typ:           TypeEventAlertState,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withEventAlertStateID sets the ID field of the mutation.
func withEventAlertStateID(id int) eventalertstateOption {
	return func(m *EventAlertStateMutation) {
		var (
			err   error
			once  sync.Once
			value *EventAlertState
		)
		m.oldValue = func(ctx context.Context) (*EventAlertState, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().EventAlertState.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withEventAlertState sets the old EventAlertState of the mutation.
func withEventAlertState(node *EventAlertState) eventalertstateOption {
	return func(m *EventAlertStateMutation) {
		m.oldValue = func(context.Context) (*EventAlertState, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m EventAlertStateMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m EventAlertStateMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *EventAlertStateMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *EventAlertStateMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().EventAlertState.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetEventID sets the "event_id" field.
func (m *EventAlertStateMutation) SetEventID(i int) {
	m.event_id = &i
	m.addevent_id = nil
}

// EventID returns the value of the "event_id" field in the mutation.
func (m *EventAlertStateMutation) EventID() (r int, exists bool) {
	v := m.event_id
	if v == nil {
		return
	}
	return *v, true
}

// OldEventID returns the old "event_id" field's value of the EventAlertState entity.
// If the EventAlertState object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventAlertStateMutation) OldEventID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEventID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEventID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEventID: %w", err)
	}
	return oldValue.EventID, nil
}

// AddEventID adds i to the "event_id" field.
func (m *EventAlertStateMutation) AddEventID(i int) {
	if m.addevent_id != nil {
		*m.addevent_id += i
	} else {
		m.addevent_id = &i
	}
}

// AddedEventID returns the value that was added to the "event_id" field in this mutation.
func (m *EventAlertStateMutation) AddedEventID() (r int, exists bool) {
	v := m.addevent_id
	if v == nil {
		return
	}
	return *v, true
}

// ResetEventID resets all changes to the "event_id" field.
func (m *EventAlertStateMutation) ResetEventID() {
	m.event_id = nil
	m.addevent_id = nil
}

// SetLastAlertHash sets the "last_alert_hash" field.
func (m *EventAlertStateMutation) SetLastAlertHash(s string) {
	m.last_alert_hash = &s
}

// LastAlertHash returns the value of the "last_alert_hash" field in the mutation.
func (m *EventAlertStateMutation) LastAlertHash() (r string, exists bool) {
	v := m.last_alert_hash
	if v == nil {
		return
	}
	return *v, true
}

// OldLastAlertHash returns the old "last_alert_hash" field's value of the EventAlertState entity.
// If the EventAlertState object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventAlertStateMutation) OldLastAlertHash(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastAlertHash is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastAlertHash requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastAlertHash: %w", err)
	}
	return oldValue.LastAlertHash, nil
}

// ClearLastAlertHash clears the value of the "last_alert_hash" field.
func (m *EventAlertStateMutation) ClearLastAlertHash() {
	m.last_alert_hash = nil
	m.clearedFields[eventalertstate.FieldLastAlertHash] = struct{}{}
}

// LastAlertHashCleared returns if the "last_alert_hash" field was cleared in this mutation.
func (m *EventAlertStateMutation) LastAlertHashCleared() bool {
	_, ok := m.clearedFields[eventalertstate.FieldLastAlertHash]
	return ok
}

// ResetLastAlertHash resets all changes to the "last_alert_hash" field.
func (m *EventAlertStateMutation) ResetLastAlertHash() {
	m.last_alert_hash = nil
	delete(m.clearedFields, eventalertstate.FieldLastAlertHash)
}

// SetLastAlertAt sets the "last_alert_at" field.
func (m *EventAlertStateMutation) SetLastAlertAt(t time.Time) {
	m.last_alert_at = &t
}

// LastAlertAt returns the value of the "last_alert_at" field in the mutation.
func (m *EventAlertStateMutation) LastAlertAt() (r time.Time, exists bool) {
	v := m.last_alert_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLastAlertAt returns the old "last_alert_at" field's value of the EventAlertState entity.
// If the EventAlertState object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventAlertStateMutation) OldLastAlertAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastAlertAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastAlertAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastAlertAt: %w", err)
	}
	return oldValue.LastAlertAt, nil
}

// ClearLastAlertAt clears the value of the "last_alert_at" field.
func (m *EventAlertStateMutation) ClearLastAlertAt() {
	m.last_alert_at = nil
	m.clearedFields[eventalertstate.FieldLastAlertAt] = struct{}{}
}

// LastAlertAtCleared returns if the "last_alert_at" field was cleared in this mutation.
func (m *EventAlertStateMutation) LastAlertAtCleared() bool {
	_, ok := m.clearedFields[eventalertstate.FieldLastAlertAt]
	return ok
}

// ResetLastAlertAt resets all changes to the "last_alert_at" field.
func (m *EventAlertStateMutation) ResetLastAlertAt() {
	m.last_alert_at = nil
	delete(m.clearedFields, eventalertstate.FieldLastAlertAt)
}

// SetCooldownUntil sets the "cooldown_until" field.
func (m *EventAlertStateMutation) SetCooldownUntil(t time.Time) {
	m.cooldown_until = &t
}

// CooldownUntil returns the value of the "cooldown_until" field in the mutation.
func (m *EventAlertStateMutation) CooldownUntil() (r time.Time, exists bool) {
	v := m.cooldown_until
	if v == nil {
		return
	}
	return *v, true
}

// OldCooldownUntil returns the old "cooldown_until" field's value of the EventAlertState entity.
// If the EventAlertState object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventAlertStateMutation) OldCooldownUntil(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCooldownUntil is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCooldownUntil requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCooldownUntil: %w", err)
	}
	return oldValue.CooldownUntil, nil
}

// ClearCooldownUntil clears the value of the "cooldown_until" field.
func (m *EventAlertStateMutation) ClearCooldownUntil() {
	m.cooldown_until = nil
	m.clearedFields[eventalertstate.FieldCooldownUntil] = struct{}{}
}

// CooldownUntilCleared returns if the "cooldown_until" field was cleared in this mutation.
func (m *EventAlertStateMutation) CooldownUntilCleared() bool {
	_, ok := m.clearedFields[eventalertstate.FieldCooldownUntil]
	return ok
}

// ResetCooldownUntil resets all changes to the "cooldown_until" field.
func (m *EventAlertStateMutation) ResetCooldownUntil() {
	m.cooldown_until = nil
	delete(m.clearedFields, eventalertstate.FieldCooldownUntil)
}

// Where appends a list predicates to the EventAlertStateMutation builder.
func (m *EventAlertStateMutation) Where(ps ...predicate.EventAlertState) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the EventAlertStateMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *EventAlertStateMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.EventAlertState, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *EventAlertStateMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *EventAlertStateMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (EventAlertState).
func (m *EventAlertStateMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *EventAlertStateMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.event_id != nil {
		fields = append(fields, eventalertstate.FieldEventID)
	}
	if m.last_alert_hash != nil {
		fields = append(fields, eventalertstate.FieldLastAlertHash)
	}
	if m.last_alert_at != nil {
		fields = append(fields, eventalertstate.FieldLastAlertAt)
	}
	if m.cooldown_until != nil {
		fields = append(fields, eventalertstate.FieldCooldownUntil)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *EventAlertStateMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case eventalertstate.FieldEventID:
		return m.EventID()
	case eventalertstate.FieldLastAlertHash:
		return m.LastAlertHash()
	case eventalertstate.FieldLastAlertAt:
		return m.LastAlertAt()
	case eventalertstate.FieldCooldownUntil:
		return m.CooldownUntil()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *EventAlertStateMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case eventalertstate.FieldEventID:
		return m.OldEventID(ctx)
	case eventalertstate.FieldLastAlertHash:
		return m.OldLastAlertHash(ctx)
	case eventalertstate.FieldLastAlertAt:
		return m.OldLastAlertAt(ctx)
	case eventalertstate.FieldCooldownUntil:
		return m.OldCooldownUntil(ctx)
	}
	return nil, fmt.Errorf("unknown EventAlertState field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EventAlertStateMutation) SetField(name string, value ent.Value) error {
	switch name {
	case eventalertstate.FieldEventID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEventID(v)
		return nil
	case eventalertstate.FieldLastAlertHash:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastAlertHash(v)
		return nil
	case eventalertstate.FieldLastAlertAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastAlertAt(v)
		return nil
	case eventalertstate.FieldCooldownUntil:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCooldownUntil(v)
		return nil
	}
	return fmt.Errorf("unknown EventAlertState field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *EventAlertStateMutation) AddedFields() []string {
	var fields []string
	if m.addevent_id != nil {
		fields = append(fields, eventalertstate.FieldEventID)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *EventAlertStateMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case eventalertstate.FieldEventID:
		return m.AddedEventID()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EventAlertStateMutation) AddField(name string, value ent.Value) error {
	switch name {
	case eventalertstate.FieldEventID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddEventID(v)
		return nil
	}
	return fmt.Errorf("unknown EventAlertState numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *EventAlertStateMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(eventalertstate.FieldLastAlertHash) {
		fields = append(fields, eventalertstate.FieldLastAlertHash)
	}
	if m.FieldCleared(eventalertstate.FieldLastAlertAt) {
		fields = append(fields, eventalertstate.FieldLastAlertAt)
	}
	if m.FieldCleared(eventalertstate.FieldCooldownUntil) {
		fields = append(fields, eventalertstate.FieldCooldownUntil)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *EventAlertStateMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *EventAlertStateMutation) ClearField(name string) error {
	switch name {
	case eventalertstate.FieldLastAlertHash:
		m.ClearLastAlertHash()
		return nil
	case eventalertstate.FieldLastAlertAt:
		m.ClearLastAlertAt()
		return nil
	case eventalertstate.FieldCooldownUntil:
		m.ClearCooldownUntil()
		return nil
	}
	return fmt.Errorf("unknown EventAlertState nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *EventAlertStateMutation) ResetField(name string) error {
	switch name {
	case eventalertstate.FieldEventID:
		m.ResetEventID()
		return nil
	case eventalertstate.FieldLastAlertHash:
		m.ResetLastAlertHash()
		return nil
	case eventalertstate.FieldLastAlertAt:
		m.ResetLastAlertAt()
		return nil
	case eventalertstate.FieldCooldownUntil:
		m.ResetCooldownUntil()
		return nil
	}
	return fmt.Errorf("unknown EventAlertState field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *EventAlertStateMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *EventAlertStateMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *EventAlertStateMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *EventAlertStateMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *EventAlertStateMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *EventAlertStateMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *EventAlertStateMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown EventAlertState unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *EventAlertStateMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown EventAlertState edge %s", name)
}

// EventDocMutation represents an operation that mutates the EventDoc nodes in the graph.
type EventDocMutation struct {
	config
	op            Op
	typ           string
	id            *int
	event_id      *int
	addevent_id   *int
	doc_id        *int
	adddoc_id     *int
	source_id     *int
	addsource_id  *int
	seen_at       *time.Time
	is_primary    *bool
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*EventDoc, error)
	predicates    []predicate.EventDoc
}

var _ ent.Mutation = (*EventDocMutation)(nil)

// eventdocOption allows management of the mutation configuration using functional options.
type eventdocOption func(*EventDocMutation)

// newEventDocMutation creates new mutation for the EventDoc entity.
func newEventDocMutation(c config, op Op, opts ...eventdocOption) *EventDocMutation {
	m := &EventDocMutation{
		config:        c,
		op:            op,
		typ:           TypeEventDoc,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withEventDocID sets the ID field of the mutation.
func withEventDocID(id int) eventdocOption {
	return func(m *EventDocMutation) {
		var (
			err   error
			once  sync.Once
			value *EventDoc
		)
		m.oldValue = func(ctx context.Context) (*EventDoc, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().EventDoc.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withEventDoc sets the old EventDoc of the mutation.
func withEventDoc(node *EventDoc) eventdocOption {
	return func(m *EventDocMutation) {
		m.oldValue = func(context.Context) (*EventDoc, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m EventDocMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m EventDocMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *EventDocMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *EventDocMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().EventDoc.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetEventID sets the "event_id" field.
func (m *EventDocMutation) SetEventID(i int) {
	m.event_id = &i
	m.addevent_id = nil
}

// EventID returns the value of the "event_id" field in the mutation.
func (m *EventDocMutation) EventID() (r int, exists bool) {
	v := m.event_id
	if v == nil {
		return
	}
	return *v, true
}

// OldEventID returns the old "event_id" field's value of the EventDoc entity.
// If the EventDoc object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventDocMutation) OldEventID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEventID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEventID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEventID: %w", err)
	}
	return oldValue.EventID, nil
}

// AddEventID adds i to the "event_id" field.
func (m *EventDocMutation) AddEventID(i int) {
	if m.addevent_id != nil {
		*m.addevent_id += i
	} else {
		m.addevent_id = &i
	}
}

// AddedEventID returns the value that was added to the "event_id" field in this mutation.
func (m *EventDocMutation) AddedEventID() (r int, exists bool) {
	v := m.addevent_id
	if v == nil {
		return
	}
	return *v, true
}

// ResetEventID resets all changes to the "event_id" field.
func (m *EventDocMutation) ResetEventID() {
	m.event_id = nil
	m.addevent_id = nil
}

// SetDocID sets the "doc_id" field.
func (m *EventDocMutation) SetDocID(i int) {
	m.doc_id = &i
	m.adddoc_id = nil
}

// DocID returns the value of the "doc_id" field in the mutation.
func (m *EventDocMutation) DocID() (r int, exists bool) {
	v := m.doc_id
	if v == nil {
		return
	}
	return *v, true
}

// OldDocID returns the old "doc_id" field's value of the EventDoc entity.
// If the EventDoc object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventDocMutation) OldDocID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDocID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDocID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDocID: %w", err)
	}
	return oldValue.DocID, nil
}

// AddDocID adds i to the "doc_id" field.
func (m *EventDocMutation) AddDocID(i int) {
	if m.adddoc_id != nil {
		*m.adddoc_id += i
	} else {
		m.adddoc_id = &i
	}
}

// AddedDocID returns the value that was added to the "doc_id" field in this mutation.
func (m *EventDocMutation) AddedDocID() (r int, exists bool) {
	v := m.adddoc_id
	if v == nil {
		return
	}
	return *v, true
}

// ResetDocID resets all changes to the "doc_id" field.
func (m *EventDocMutation) ResetDocID() {
	m.doc_id = nil
	m.adddoc_id = nil
}

// SetSourceID sets the "source_id" field.
func (m *EventDocMutation) SetSourceID(i int) {
	m.source_id = &i
	m.addsource_id = nil
}

// SourceID returns the value of the "source_id" field in the mutation.
func (m *EventDocMutation) SourceID() (r int, exists bool) {
	v := m.source_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSourceID returns the old "source_id" field's value of the EventDoc entity.
// If the EventDoc object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventDocMutation) OldSourceID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSourceID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSourceID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSourceID: %w", err)
	}
	return oldValue.SourceID, nil
}

// AddSourceID adds i to the "source_id" field.
func (m *EventDocMutation) AddSourceID(i int) {
	if m.addsource_id != nil {
		*m.addsource_id += i
	} else {
		m.addsource_id = &i
	}
}

// AddedSourceID returns the value that was added to the "source_id" field in this mutation.
func (m *EventDocMutation) AddedSourceID() (r int, exists bool) {
	v := m.addsource_id
	if v == nil {
		return
	}
	return *v, true
}

// ResetSourceID resets all changes to the "source_id" field.
func (m *EventDocMutation) ResetSourceID() {
	m.source_id = nil
	m.addsource_id = nil
}

// SetSeenAt sets the "seen_at" field.
func (m *EventDocMutation) SetSeenAt(t time.Time) {
	m.seen_at = &t
}

// SeenAt returns the value of the "seen_at" field in the mutation.
func (m *EventDocMutation) SeenAt() (r time.Time, exists bool) {
	v := m.seen_at
	if v == nil {
		return
	}
	return *v, true
}

// OldSeenAt returns the old "seen_at" field's value of the EventDoc entity.
// If the EventDoc object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventDocMutation) OldSeenAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSeenAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSeenAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSeenAt: %w", err)
	}
	return oldValue.SeenAt, nil
}

// ResetSeenAt resets all changes to the "seen_at" field.
func (m *EventDocMutation) ResetSeenAt() {
	m.seen_at = nil
}

// SetIsPrimary sets the "is_primary" field.
func (m *EventDocMutation) SetIsPrimary(b bool) {
	m.is_primary = &b
}

// IsPrimary returns the value of the "is_primary" field in the mutation.
func (m *EventDocMutation) IsPrimary() (r bool, exists bool) {
	v := m.is_primary
	if v == nil {
		return
	}
	return *v, true
}

// OldIsPrimary returns the old "is_primary" field's value of the EventDoc entity.
// If the EventDoc object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventDocMutation) OldIsPrimary(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsPrimary is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsPrimary requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsPrimary: %w", err)
	}
	return oldValue.IsPrimary, nil
}

// ResetIsPrimary resets all changes to the "is_primary" field.
func (m *EventDocMutation) ResetIsPrimary() {
	m.is_primary = nil
}

// Where appends a list predicates to the EventDocMutation builder.
func (m *EventDocMutation) Where(ps ...predicate.EventDoc) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the EventDocMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *EventDocMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.EventDoc, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *EventDocMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *EventDocMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (EventDoc).
func (m *EventDocMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *EventDocMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.event_id != nil {
		fields = append(fields, eventdoc.FieldEventID)
	}
	if m.doc_id != nil {
		fields = append(fields, eventdoc.FieldDocID)
	}
	if m.source_id != nil {
		fields = append(fields, eventdoc.FieldSourceID)
	}
	if m.seen_at != nil {
		fields = append(fields, eventdoc.FieldSeenAt)
	}
	if m.is_primary != nil {
		fields = append(fields, eventdoc.FieldIsPrimary)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *EventDocMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case eventdoc.FieldEventID:
		return m.EventID()
	case eventdoc.FieldDocID:
		return m.DocID()
	case eventdoc.FieldSourceID:
		return m.SourceID()
	case eventdoc.FieldSeenAt:
		return m.SeenAt()
	case eventdoc.FieldIsPrimary:
		return m.IsPrimary()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *EventDocMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case eventdoc.FieldEventID:
		return m.OldEventID(ctx)
	case eventdoc.FieldDocID:
		return m.OldDocID(ctx)
	case eventdoc.FieldSourceID:
		return m.OldSourceID(ctx)
	case eventdoc.FieldSeenAt:
		return m.OldSeenAt(ctx)
	case eventdoc.FieldIsPrimary:
		return m.OldIsPrimary(ctx)
	}
	return nil, fmt.Errorf("unknown EventDoc field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EventDocMutation) SetField(name string, value ent.Value) error {
	switch name {
	case eventdoc.FieldEventID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEventID(v)
		return nil
	case eventdoc.FieldDocID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDocID(v)
		return nil
	case eventdoc.FieldSourceID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSourceID(v)
		return nil
	case eventdoc.FieldSeenAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSeenAt(v)
		return nil
	case eventdoc.FieldIsPrimary:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsPrimary(v)
		return nil
	}
	return fmt.Errorf("unknown EventDoc field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *EventDocMutation) AddedFields() []string {
	var fields []string
	if m.addevent_id != nil {
		fields = append(fields, eventdoc.FieldEventID)
	}
	if m.adddoc_id != nil {
		fields = append(fields, eventdoc.FieldDocID)
	}
	if m.addsource_id != nil {
		fields = append(fields, eventdoc.FieldSourceID)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *EventDocMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case eventdoc.FieldEventID:
		return m.AddedEventID()
	case eventdoc.FieldDocID:
		return m.AddedDocID()
	case eventdoc.FieldSourceID:
		return m.AddedSourceID()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EventDocMutation) AddField(name string, value ent.Value) error {
	switch name {
	case eventdoc.FieldEventID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddEventID(v)
		return nil
	case eventdoc.FieldDocID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDocID(v)
		return nil
	case eventdoc.FieldSourceID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSourceID(v)
		return nil
	}
	return fmt.Errorf("unknown EventDoc numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *EventDocMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *EventDocMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *EventDocMutation) ClearField(name string) error {
	return fmt.Errorf("unknown EventDoc nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *EventDocMutation) ResetField(name string) error {
	switch name {
	case eventdoc.FieldEventID:
		m.ResetEventID()
		return nil
	case eventdoc.FieldDocID:
		m.ResetDocID()
		return nil
	case eventdoc.FieldSourceID:
		m.ResetSourceID()
		return nil
	case eventdoc.FieldSeenAt:
		m.ResetSeenAt()
		return nil
	case eventdoc.FieldIsPrimary:
		m.ResetIsPrimary()
		return nil
	}
	return fmt.Errorf("unknown EventDoc field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *EventDocMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *EventDocMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *EventDocMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *EventDocMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *EventDocMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *EventDocMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *EventDocMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown EventDoc unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *EventDocMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown EventDoc edge %s", name)
}

// EventScoreMutation represents an operation that mutates the EventScore nodes in the graph.
type EventScoreMutation struct {
	config
	op                   Op
	typ                  string
	id                   *int
	event_id             *int
	addevent_id          *int
	score_plantao        *float64
	addscore_plantao     *float64
	score_oceano_azul    *float64
	addscore_oceano_azul *float64
	reasons_json         *map[string][]string
	computed_at          *time.Time
	clearedFields        map[string]struct{}
	done                 bool
	oldValue             func(context.Context) (*EventScore, error)
	predicates           []predicate.EventScore
}

var _ ent.Mutation = (*EventScoreMutation)(nil)

// eventscoreOption allows management of the mutation configuration using functional options.
type eventscoreOption func(*EventScoreMutation)

// newEventScoreMutation creates new mutation for the EventScore entity.
func newEventScoreMutation(c config, op Op, opts ...eventscoreOption) *EventScoreMutation {
	m := &EventScoreMutation{
		config:        c,
		op:            op,
		typ:           TypeEventScore,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withEventScoreID sets the ID field of the mutation.
func withEventScoreID(id int) eventscoreOption {
	return func(m *EventScoreMutation) {
		var (
			err   error
			once  sync.Once
			value *EventScore
		)
		m.oldValue = func(ctx context.Context) (*EventScore, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().EventScore.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withEventScore sets the old EventScore of the mutation.
func withEventScore(node *EventScore) eventscoreOption {
	return func(m *EventScoreMutation) {
		m.oldValue = func(context.Context) (*EventScore, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m EventScoreMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m EventScoreMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *EventScoreMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *EventScoreMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().EventScore.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetEventID sets the "event_id" field.
func (m *EventScoreMutation) SetEventID(i int) {
	m.event_id = &i
	m.addevent_id = nil
}

// EventID returns the value of the "event_id" field in the mutation.
func (m *EventScoreMutation) EventID() (r int, exists bool) {
	v := m.event_id
	if v == nil {
		return
	}
	return *v, true
}

// OldEventID returns the old "event_id" field's value of the EventScore entity.
// If the EventScore object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventScoreMutation) OldEventID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEventID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEventID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEventID: %w", err)
	}
	return oldValue.EventID, nil
}

// AddEventID adds i to the "event_id" field.
func (m *EventScoreMutation) AddEventID(i int) {
	if m.addevent_id != nil {
		*m.addevent_id += i
	} else {
		m.addevent_id = &i
	}
}

// AddedEventID returns the value that was added to the "event_id" field in this mutation.
func (m *EventScoreMutation) AddedEventID() (r int, exists bool) {
	v := m.addevent_id
	if v == nil {
		return
	}
	return *v, true
}

// ResetEventID resets all changes to the "event_id" field.
func (m *EventScoreMutation) ResetEventID() {
	m.event_id = nil
	m.addevent_id = nil
}

// SetScorePlantao sets the "score_plantao" field.
func (m *EventScoreMutation) SetScorePlantao(f float64) {
	m.score_plantao = &f
	m.addscore_plantao = nil
}

// ScorePlantao returns the value of the "score_plantao" field in the mutation.
func (m *EventScoreMutation) ScorePlantao() (r float64, exists bool) {
	v := m.score_plantao
	if v == nil {
		return
	}
	return *v, true
}

// OldScorePlantao returns the old "score_plantao" field's value of the EventScore entity.
// If the EventScore object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventScoreMutation) OldScorePlantao(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldScorePlantao is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldScorePlantao requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldScorePlantao: %w", err)
	}
	return oldValue.ScorePlantao, nil
}

// AddScorePlantao adds f to the "score_plantao" field.
func (m *EventScoreMutation) AddScorePlantao(f float64) {
	if m.addscore_plantao != nil {
		*m.addscore_plantao += f
	} else {
		m.addscore_plantao = &f
	}
}

// AddedScorePlantao returns the value that was added to the "score_plantao" field in this mutation.
func (m *EventScoreMutation) AddedScorePlantao() (r float64, exists bool) {
	v := m.addscore_plantao
	if v == nil {
		return
	}
	return *v, true
}

// ResetScorePlantao resets all changes to the "score_plantao" field.
func (m *EventScoreMutation) ResetScorePlantao() {
	m.score_plantao = nil
	m.addscore_plantao = nil
}

// SetScoreOceanoAzul sets the "score_oceano_azul" field.
func (m *EventScoreMutation) SetScoreOceanoAzul(f float64) {
	m.score_oceano_azul = &f
	m.addscore_oceano_azul = nil
}

// ScoreOceanoAzul returns the value of the "score_oceano_azul" field in the mutation.
func (m *EventScoreMutation) ScoreOceanoAzul() (r float64, exists bool) {
	v := m.score_oceano_azul
	if v == nil {
		return
	}
	return *v, true
}

// OldScoreOceanoAzul returns the old "score_oceano_azul" field's value of the EventScore entity.
// If the EventScore object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventScoreMutation) OldScoreOceanoAzul(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldScoreOceanoAzul is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldScoreOceanoAzul requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldScoreOceanoAzul: %w", err)
	}
	return oldValue.ScoreOceanoAzul, nil
}

// AddScoreOceanoAzul adds f to the "score_oceano_azul" field.
func (m *EventScoreMutation) AddScoreOceanoAzul(f float64) {
	if m.addscore_oceano_azul != nil {
		*m.addscore_oceano_azul += f
	} else {
		m.addscore_oceano_azul = &f
	}
}

// AddedScoreOceanoAzul returns the value that was added to the "score_oceano_azul" field in this mutation.
func (m *EventScoreMutation) AddedScoreOceanoAzul() (r float64, exists bool) {
	v := m.addscore_oceano_azul
	if v == nil {
		return
	}
	return *v, true
}

// ResetScoreOceanoAzul resets all changes to the "score_oceano_azul" field.
func (m *EventScoreMutation) ResetScoreOceanoAzul() {
	m.score_oceano_azul = nil
	m.addscore_oceano_azul = nil
}

// SetReasonsJSON sets the "reasons_json" field.
func (m *EventScoreMutation) SetReasonsJSON(value map[string][]string) {
	m.reasons_json = &value
}

// ReasonsJSON returns the value of the "reasons_json" field in the mutation.
func (m *EventScoreMutation) ReasonsJSON() (r map[string][]string, exists bool) {
	v := m.reasons_json
	if v == nil {
		return
	}
	return *v, true
}

// OldReasonsJSON returns the old "reasons_json" field's value of the EventScore entity.
// If the EventScore object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventScoreMutation) OldReasonsJSON(ctx context.Context) (v map[string][]string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReasonsJSON is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReasonsJSON requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReasonsJSON: %w", err)
	}
	return oldValue.ReasonsJSON, nil
}

// ClearReasonsJSON clears the value of the "reasons_json" field.
func (m *EventScoreMutation) ClearReasonsJSON() {
	m.reasons_json = nil
	m.clearedFields[eventscore.FieldReasonsJSON] = struct{}{}
}

// ReasonsJSONCleared returns if the "reasons_json" field was cleared in this mutation.
func (m *EventScoreMutation) ReasonsJSONCleared() bool {
	_, ok := m.clearedFields[eventscore.FieldReasonsJSON]
	return ok
}

// ResetReasonsJSON resets all changes to the "reasons_json" field.
func (m *EventScoreMutation) ResetReasonsJSON() {
	m.reasons_json = nil
	delete(m.clearedFields, eventscore.FieldReasonsJSON)
}

// SetComputedAt sets the "computed_at" field.
func (m *EventScoreMutation) SetComputedAt(t time.Time) {
	m.computed_at = &t
}

// ComputedAt returns the value of the "computed_at" field in the mutation.
func (m *EventScoreMutation) ComputedAt() (r time.Time, exists bool) {
	v := m.computed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldComputedAt returns the old "computed_at" field's value of the EventScore entity.
// If the EventScore object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventScoreMutation) OldComputedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldComputedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldComputedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldComputedAt: %w", err)
	}
	return oldValue.ComputedAt, nil
}

// ResetComputedAt resets all changes to the "computed_at" field.
func (m *EventScoreMutation) ResetComputedAt() {
	m.computed_at = nil
}

// Where appends a list predicates to the EventScoreMutation builder.
func (m *EventScoreMutation) Where(ps ...predicate.EventScore) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the EventScoreMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *EventScoreMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.EventScore, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *EventScoreMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *EventScoreMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (EventScore).
func (m *EventScoreMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *EventScoreMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.event_id != nil {
		fields = append(fields, eventscore.FieldEventID)
	}
	if m.score_plantao != nil {
		fields = append(fields, eventscore.FieldScorePlantao)
	}
	if m.score_oceano_azul != nil {
		fields = append(fields, eventscore.FieldScoreOceanoAzul)
	}
	if m.reasons_json != nil {
		fields = append(fields, eventscore.FieldReasonsJSON)
	}
	if m.computed_at != nil {
		fields = append(fields, eventscore.FieldComputedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *EventScoreMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case eventscore.FieldEventID:
		return m.EventID()
	case eventscore.FieldScorePlantao:
		return m.ScorePlantao()
	case eventscore.FieldScoreOceanoAzul:
		return m.ScoreOceanoAzul()
	case eventscore.FieldReasonsJSON:
		return m.ReasonsJSON()
	case eventscore.FieldComputedAt:
		return m.ComputedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *EventScoreMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case eventscore.FieldEventID:
		return m.OldEventID(ctx)
	case eventscore.FieldScorePlantao:
		return m.OldScorePlantao(ctx)
	case eventscore.FieldScoreOceanoAzul:
		return m.OldScoreOceanoAzul(ctx)
	case eventscore.FieldReasonsJSON:
		return m.OldReasonsJSON(ctx)
	case eventscore.FieldComputedAt:
		return m.OldComputedAt(ctx)
	}
	return nil, fmt.Errorf("unknown EventScore field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EventScoreMutation) SetField(name string, value ent.Value) error {
	switch name {
	case eventscore.FieldEventID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEventID(v)
		return nil
	case eventscore.FieldScorePlantao:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetScorePlantao(v)
		return nil
	case eventscore.FieldScoreOceanoAzul:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetScoreOceanoAzul(v)
		return nil
	case eventscore.FieldReasonsJSON:
		v, ok := value.(map[string][]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReasonsJSON(v)
		return nil
	case eventscore.FieldComputedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetComputedAt(v)
		return nil
	}
	return fmt.Errorf("unknown EventScore field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *EventScoreMutation) AddedFields() []string {
	var fields []string
	if m.addevent_id != nil {
		fields = append(fields, eventscore.FieldEventID)
	}
	if m.addscore_plantao != nil {
		fields = append(fields, eventscore.FieldScorePlantao)
	}
	if m.addscore_oceano_azul != nil {
		fields = append(fields, eventscore.FieldScoreOceanoAzul)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *EventScoreMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case eventscore.FieldEventID:
		return m.AddedEventID()
	case eventscore.FieldScorePlantao:
		return m.AddedScorePlantao()
	case eventscore.FieldScoreOceanoAzul:
		return m.AddedScoreOceanoAzul()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EventScoreMutation) AddField(name string, value ent.Value) error {
	switch name {
	case eventscore.FieldEventID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddEventID(v)
		return nil
	case eventscore.FieldScorePlantao:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddScorePlantao(v)
		return nil
	case eventscore.FieldScoreOceanoAzul:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddScoreOceanoAzul(v)
		return nil
	}
	return fmt.Errorf("unknown EventScore numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *EventScoreMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(eventscore.FieldReasonsJSON) {
		fields = append(fields, eventscore.FieldReasonsJSON)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *EventScoreMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *EventScoreMutation) ClearField(name string) error {
	switch name {
	case eventscore.FieldReasonsJSON:
		m.ClearReasonsJSON()
		return nil
	}
	return fmt.Errorf("unknown EventScore nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *EventScoreMutation) ResetField(name string) error {
	switch name {
	case eventscore.FieldEventID:
		m.ResetEventID()
		return nil
	case eventscore.FieldScorePlantao:
		m.ResetScorePlantao()
		return nil
	case eventscore.FieldScoreOceanoAzul:
		m.ResetScoreOceanoAzul()
		return nil
	case eventscore.FieldReasonsJSON:
		m.ResetReasonsJSON()
		return nil
	case eventscore.FieldComputedAt:
		m.ResetComputedAt()
		return nil
	}
	return fmt.Errorf("unknown EventScore field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *EventScoreMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *EventScoreMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *EventScoreMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *EventScoreMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *EventScoreMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *EventScoreMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *EventScoreMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown EventScore unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *EventScoreMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown EventScore edge %s", name)
}

// EventStateMutation represents an operation that mutates the EventState nodes in the graph.
type EventStateMutation struct {
	config
	op            Op
	typ           string
	id            *int
	event_id      *int
	addevent_id   *int
	status        *eventstate.Status
	status_reason *string
	updated_at    *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*EventState, error)
	predicates    []predicate.EventState
}

var _ ent.Mutation = (*EventStateMutation)(nil)

// eventstateOption allows management of the mutation configuration using functional options.
type eventstateOption func(*EventStateMutation)

// newEventStateMutation creates new mutation for the EventState entity.
func newEventStateMutation(c config, op Op, opts ...eventstateOption) *EventStateMutation {
	m := &EventStateMutation{
		config:        c,
		op:            op,
		typ:           TypeEventState,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withEventStateID sets the ID field of the mutation.
func withEventStateID(id int) eventstateOption {
	return func(m *EventStateMutation) {
		var (
			err   error
			once  sync.Once
			value *EventState
		)
		m.oldValue = func(ctx context.Context) (*EventState, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().EventState.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withEventState sets the old EventState of the mutation.
func withEventState(node *EventState) eventstateOption {
	return func(m *EventStateMutation) {
		m.oldValue = func(context.Context) (*EventState, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m EventStateMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m EventStateMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *EventStateMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *EventStateMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().EventState.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetEventID sets the "event_id" field.
func (m *EventStateMutation) SetEventID(i int) {
	m.event_id = &i
	m.addevent_id = nil
}

// EventID returns the value of the "event_id" field in the mutation.
func (m *EventStateMutation) EventID() (r int, exists bool) {
	v := m.event_id
	if v == nil {
		return
	}
	return *v, true
}

// OldEventID returns the old "event_id" field's value of the EventState entity.
// If the EventState object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventStateMutation) OldEventID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEventID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEventID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEventID: %w", err)
	}
	return oldValue.EventID, nil
}

// AddEventID adds i to the "event_id" field.
func (m *EventStateMutation) AddEventID(i int) {
	if m.addevent_id != nil {
		*m.addevent_id += i
	} else {
		m.addevent_id = &i
	}
}

// AddedEventID returns the value that was added to the "event_id" field in this mutation.
func (m *EventStateMutation) AddedEventID() (r int, exists bool) {
	v := m.addevent_id
	if v == nil {
		return
	}
	return *v, true
}

// ResetEventID resets all changes to the "event_id" field.
func (m *EventStateMutation) ResetEventID() {
	m.event_id = nil
	m.addevent_id = nil
}

// SetStatus sets the "status" field.
func (m *EventStateMutation) SetStatus(e eventstate.Status) {
	m.status = &e
}

// Status returns the value of the "status" field in the mutation.
func (m *EventStateMutation) Status() (r eventstate.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the EventState entity.
// If the EventState object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventStateMutation) OldStatus(ctx context.Context) (v eventstate.Status, err error) {
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
func (m *EventStateMutation) ResetStatus() {
	m.status = nil
}

// SetStatusReason sets the "status_reason" field.
func (m *EventStateMutation) SetStatusReason(s string) {
	m.status_reason = &s
}

// StatusReason returns the value of the "status_reason" field in the mutation.
func (m *EventStateMutation) StatusReason() (r string, exists bool) {
	v := m.status_reason
	if v == nil {
		return
	}
	return *v, true
}

// OldStatusReason returns the old "status_reason" field's value of the EventState entity.
// If the EventState object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventStateMutation) OldStatusReason(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatusReason is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatusReason requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatusReason: %w", err)
	}
	return oldValue.StatusReason, nil
}

// ResetStatusReason resets all changes to the "status_reason" field.
func (m *EventStateMutation) ResetStatusReason() {
	m.status_reason = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *EventStateMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *EventStateMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the EventState entity.
// If the EventState object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventStateMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *EventStateMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the EventStateMutation builder.
func (m *EventStateMutation) Where(ps ...predicate.EventState) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the EventStateMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *EventStateMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.EventState, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *EventStateMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *EventStateMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (EventState).
func (m *EventStateMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *EventStateMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.event_id != nil {
		fields = append(fields, eventstate.FieldEventID)
	}
	if m.status != nil {
		fields = append(fields, eventstate.FieldStatus)
	}
	if m.status_reason != nil {
		fields = append(fields, eventstate.FieldStatusReason)
	}
	if m.updated_at != nil {
		fields = append(fields, eventstate.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *EventStateMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case eventstate.FieldEventID:
		return m.EventID()
	case eventstate.FieldStatus:
		return m.Status()
	case eventstate.FieldStatusReason:
		return m.StatusReason()
	case eventstate.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *EventStateMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case eventstate.FieldEventID:
		return m.OldEventID(ctx)
	case eventstate.FieldStatus:
		return m.OldStatus(ctx)
	case eventstate.FieldStatusReason:
		return m.OldStatusReason(ctx)
	case eventstate.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown EventState field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EventStateMutation) SetField(name string, value ent.Value) error {
	switch name {
	case eventstate.FieldEventID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEventID(v)
		return nil
	case eventstate.FieldStatus:
		v, ok := value.(eventstate.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case eventstate.FieldStatusReason:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatusReason(v)
		return nil
	case eventstate.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown EventState field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *EventStateMutation) AddedFields() []string {
	var fields []string
	if m.addevent_id != nil {
		fields = append(fields, eventstate.FieldEventID)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *EventStateMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case eventstate.FieldEventID:
		return m.AddedEventID()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EventStateMutation) AddField(name string, value ent.Value) error {
	switch name {
	case eventstate.FieldEventID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddEventID(v)
		return nil
	}
	return fmt.Errorf("unknown EventState numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *EventStateMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *EventStateMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *EventStateMutation) ClearField(name string) error {
	return fmt.Errorf("unknown EventState nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *EventStateMutation) ResetField(name string) error {
	switch name {
	case eventstate.FieldEventID:
		m.ResetEventID()
		return nil
	case eventstate.FieldStatus:
		m.ResetStatus()
		return nil
	case eventstate.FieldStatusReason:
		m.ResetStatusReason()
		return nil
	case eventstate.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown EventState field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *EventStateMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *EventStateMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *EventStateMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *EventStateMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *EventStateMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *EventStateMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *EventStateMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown EventState unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *EventStateMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown EventState edge %s", name)
}

// FeedbackEventMutation represents an operation that mutates the FeedbackEvent nodes in the graph.
type FeedbackEventMutation struct {
	config
	op            Op
	typ           string
	id            *int
	event_id      *int
	addevent_id   *int
	action        *feedbackevent.Action
	actor         *string
	payload_json  *map[string]interface{}
	created_at    *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*FeedbackEvent, error)
	predicates    []predicate.FeedbackEvent
}

var _ ent.Mutation = (*FeedbackEventMutation)(nil)

// feedbackeventOption allows management of the mutation configuration using functional options.
type feedbackeventOption func(*FeedbackEventMutation)

// newFeedbackEventMutation creates new mutation for the FeedbackEvent entity.
func newFeedbackEventMutation(c config, op Op, opts ...feedbackeventOption) *FeedbackEventMutation {
	m := &FeedbackEventMutation{
		config:        c,
		op:            op,
		typ:           TypeFeedbackEvent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withFeedbackEventID sets the ID field of the mutation.
func withFeedbackEventID(id int) feedbackeventOption {
	return func(m *FeedbackEventMutation) {
		var (
			err   error
			once  sync.Once
			value *FeedbackEvent
		)
		m.oldValue = func(ctx context.Context) (*FeedbackEvent, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().FeedbackEvent.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withFeedbackEvent sets the old FeedbackEvent of the mutation.
func withFeedbackEvent(node *FeedbackEvent) feedbackeventOption {
	return func(m *FeedbackEventMutation) {
		m.oldValue = func(context.Context) (*FeedbackEvent, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m FeedbackEventMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m FeedbackEventMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *FeedbackEventMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *FeedbackEventMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().FeedbackEvent.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetEventID sets the "event_id" field.
func (m *FeedbackEventMutation) SetEventID(i int) {
	m.event_id = &i
	m.addevent_id = nil
}

// EventID returns the value of the "event_id" field in the mutation.
func (m *FeedbackEventMutation) EventID() (r int, exists bool) {
	v := m.event_id
	if v == nil {
		return
	}
	return *v, true
}

// OldEventID returns the old "event_id" field's value of the FeedbackEvent entity.
// If the FeedbackEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FeedbackEventMutation) OldEventID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEventID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEventID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEventID: %w", err)
	}
	return oldValue.EventID, nil
}

// AddEventID adds i to the "event_id" field.
func (m *FeedbackEventMutation) AddEventID(i int) {
	if m.addevent_id != nil {
		*m.addevent_id += i
	} else {
		m.addevent_id = &i
	}
}

// AddedEventID returns the value that was added to the "event_id" field in this mutation.
func (m *FeedbackEventMutation) AddedEventID() (r int, exists bool) {
	v := m.addevent_id
	if v == nil {
		return
	}
	return *v, true
}

// ResetEventID resets all changes to the "event_id" field.
func (m *FeedbackEventMutation) ResetEventID() {
	m.event_id = nil
	m.addevent_id = nil
}

// SetAction sets the "action" field.
func (m *FeedbackEventMutation) SetAction(f feedbackevent.Action) {
	m.action = &f
}

// Action returns the value of the "action" field in the mutation.
func (m *FeedbackEventMutation) Action() (r feedbackevent.Action, exists bool) {
	v := m.action
	if v == nil {
		return
	}
	return *v, true
}

// OldAction returns the old "action" field's value of the FeedbackEvent entity.
// If the FeedbackEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FeedbackEventMutation) OldAction(ctx context.Context) (v feedbackevent.Action, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAction is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAction requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAction: %w", err)
	}
	return oldValue.Action, nil
}

// ResetAction resets all changes to the "action" field.
func (m *FeedbackEventMutation) ResetAction() {
	m.action = nil
}

// SetActor sets the "actor" field.
func (m *FeedbackEventMutation) SetActor(s string) {
	m.actor = &s
}

// Actor returns the value of the "actor" field in the mutation.
func (m *FeedbackEventMutation) Actor() (r string, exists bool) {
	v := m.actor
	if v == nil {
		return
	}
	return *v, true
}

// OldActor returns the old "actor" field's value of the FeedbackEvent entity.
// If the FeedbackEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FeedbackEventMutation) OldActor(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldActor is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldActor requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldActor: %w", err)
	}
	return oldValue.Actor, nil
}

// ClearActor clears the value of the "actor" field.
func (m *FeedbackEventMutation) ClearActor() {
	m.actor = nil
	m.clearedFields[feedbackevent.FieldActor] = struct{}{}
}

// ActorCleared returns if the "actor" field was cleared in this mutation.
func (m *FeedbackEventMutation) ActorCleared() bool {
	_, ok := m.clearedFields[feedbackevent.FieldActor]
	return ok
}

// ResetActor resets all changes to the "actor" field.
func (m *FeedbackEventMutation) ResetActor() {
	m.actor = nil
	delete(m.clearedFields, feedbackevent.FieldActor)
}

// SetPayloadJSON sets the "payload_json" field.
func (m *FeedbackEventMutation) SetPayloadJSON(value map[string]interface{}) {
	m.payload_json = &value
}

// PayloadJSON returns the value of the "payload_json" field in the mutation.
func (m *FeedbackEventMutation) PayloadJSON() (r map[string]interface{}, exists bool) {
	v := m.payload_json
	if v == nil {
		return
	}
	return *v, true
}

// OldPayloadJSON returns the old "payload_json" field's value of the FeedbackEvent entity.
// If the FeedbackEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FeedbackEventMutation) OldPayloadJSON(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPayloadJSON is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPayloadJSON requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPayloadJSON: %w", err)
	}
	return oldValue.PayloadJSON, nil
}

// ClearPayloadJSON clears the value of the "payload_json" field.
func (m *FeedbackEventMutation) ClearPayloadJSON() {
	m.payload_json = nil
	m.clearedFields[feedbackevent.FieldPayloadJSON] = struct{}{}
}

// PayloadJSONCleared returns if the "payload_json" field was cleared in this mutation.
func (m *FeedbackEventMutation) PayloadJSONCleared() bool {
	_, ok := m.clearedFields[feedbackevent.FieldPayloadJSON]
	return ok
}

// ResetPayloadJSON resets all changes to the "payload_json" field.
func (m *FeedbackEventMutation) ResetPayloadJSON() {
	m.payload_json = nil
	delete(m.clearedFields, feedbackevent.FieldPayloadJSON)
}

// SetCreatedAt sets the "created_at" field.
func (m *FeedbackEventMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *FeedbackEventMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the FeedbackEvent entity.
// If the FeedbackEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FeedbackEventMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *FeedbackEventMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the FeedbackEventMutation builder.
func (m *FeedbackEventMutation) Where(ps ...predicate.FeedbackEvent) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the FeedbackEventMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *FeedbackEventMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.FeedbackEvent, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *FeedbackEventMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *FeedbackEventMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (FeedbackEvent).
func (m *FeedbackEventMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *FeedbackEventMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.event_id != nil {
		fields = append(fields, feedbackevent.FieldEventID)
	}
	if m.action != nil {
		fields = append(fields, feedbackevent.FieldAction)
	}
	if m.actor != nil {
		fields = append(fields, feedbackevent.FieldActor)
	}
	if m.payload_json != nil {
		fields = append(fields, feedbackevent.FieldPayloadJSON)
	}
	if m.created_at != nil {
		fields = append(fields, feedbackevent.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *FeedbackEventMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case feedbackevent.FieldEventID:
		return m.EventID()
	case feedbackevent.FieldAction:
		return m.Action()
	case feedbackevent.FieldActor:
		return m.Actor()
	case feedbackevent.FieldPayloadJSON:
		return m.PayloadJSON()
	case feedbackevent.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *FeedbackEventMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case feedbackevent.FieldEventID:
		return m.OldEventID(ctx)
	case feedbackevent.FieldAction:
		return m.OldAction(ctx)
	case feedbackevent.FieldActor:
		return m.OldActor(ctx)
	case feedbackevent.FieldPayloadJSON:
		return m.OldPayloadJSON(ctx)
	case feedbackevent.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown FeedbackEvent field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *FeedbackEventMutation) SetField(name string, value ent.Value) error {
	switch name {
	case feedbackevent.FieldEventID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEventID(v)
		return nil
	case feedbackevent.FieldAction:
		v, ok := value.(feedbackevent.Action)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAction(v)
		return nil
	case feedbackevent.FieldActor:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetActor(v)
		return nil
	case feedbackevent.FieldPayloadJSON:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPayloadJSON(v)
		return nil
	case feedbackevent.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown FeedbackEvent field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *FeedbackEventMutation) AddedFields() []string {
	var fields []string
	if m.addevent_id != nil {
		fields = append(fields, feedbackevent.FieldEventID)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *FeedbackEventMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case feedbackevent.FieldEventID:
		return m.AddedEventID()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *FeedbackEventMutation) AddField(name string, value ent.Value) error {
	switch name {
	case feedbackevent.FieldEventID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddEventID(v)
		return nil
	}
	return fmt.Errorf("unknown FeedbackEvent numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *FeedbackEventMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(feedbackevent.FieldActor) {
		fields = append(fields, feedbackevent.FieldActor)
	}
	if m.FieldCleared(feedbackevent.FieldPayloadJSON) {
		fields = append(fields, feedbackevent.FieldPayloadJSON)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *FeedbackEventMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *FeedbackEventMutation) ClearField(name string) error {
	switch name {
	case feedbackevent.FieldActor:
		m.ClearActor()
		return nil
	case feedbackevent.FieldPayloadJSON:
		m.ClearPayloadJSON()
		return nil
	}
	return fmt.Errorf("unknown FeedbackEvent nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *FeedbackEventMutation) ResetField(name string) error {
	switch name {
	case feedbackevent.FieldEventID:
		m.ResetEventID()
		return nil
	case feedbackevent.FieldAction:
		m.ResetAction()
		return nil
	case feedbackevent.FieldActor:
		m.ResetActor()
		return nil
	case feedbackevent.FieldPayloadJSON:
		m.ResetPayloadJSON()
		return nil
	case feedbackevent.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown FeedbackEvent field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *FeedbackEventMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *FeedbackEventMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *FeedbackEventMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *FeedbackEventMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *FeedbackEventMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *FeedbackEventMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *FeedbackEventMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown FeedbackEvent unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *FeedbackEventMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown FeedbackEvent edge %s", name)
}

// FetchAttemptMutation represents an operation that mutates the FetchAttempt nodes in the graph.
type FetchAttemptMutation struct {
	config
	op             Op
	typ            string
	id             *int
	url            *string
	status_code    *int
	addstatus_code *int
	error_class    *string
	latency_ms     *int64
	addlatency_ms  *int64
	bytes          *int64
	addbytes       *int64
	pool           *string
	snapshot_hash  *string
	created_at     *time.Time
	clearedFields  map[string]struct{}
	source         *int
	clearedsource  bool
	done           bool
	oldValue       func(context.Context) (*FetchAttempt, error)
	predicates     []predicate.FetchAttempt
}

var _ ent.Mutation = (*FetchAttemptMutation)(nil)

// fetchattemptOption allows management of the mutation configuration using functional options.
type fetchattemptOption func(*FetchAttemptMutation)

// newFetchAttemptMutation creates new mutation for the FetchAttempt entity.
func newFetchAttemptMutation(c config, op Op, opts ...fetchattemptOption) *FetchAttemptMutation {
	m := &FetchAttemptMutation{
		config:        c,
		op:            op,
		typ:           TypeFetchAttempt,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withFetchAttemptID sets the ID field of the mutation.
func withFetchAttemptID(id int) fetchattemptOption {
	return func(m *FetchAttemptMutation) {
		var (
			err   error
			once  sync.Once
			value *FetchAttempt
		)
		m.oldValue = func(ctx context.Context) (*FetchAttempt, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().FetchAttempt.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withFetchAttempt sets the old FetchAttempt of the mutation.
func withFetchAttempt(node *FetchAttempt) fetchattemptOption {
	return func(m *FetchAttemptMutation) {
		m.oldValue = func(context.Context) (*FetchAttempt, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m FetchAttemptMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m FetchAttemptMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *FetchAttemptMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *FetchAttemptMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().FetchAttempt.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSourceID sets the "source_id" field.
func (m *FetchAttemptMutation) SetSourceID(i int) {
	m.source = &i
}

// SourceID returns the value of the "source_id" field in the mutation.
func (m *FetchAttemptMutation) SourceID() (r int, exists bool) {
	v := m.source
	if v == nil {
		return
	}
	return *v, true
}

// OldSourceID returns the old "source_id" field's value of the FetchAttempt entity.
// If the FetchAttempt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FetchAttemptMutation) OldSourceID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSourceID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSourceID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSourceID: %w", err)
	}
	return oldValue.SourceID, nil
}

// ResetSourceID resets all changes to the "source_id" field.
func (m *FetchAttemptMutation) ResetSourceID() {
	m.source = nil
}

// SetURL sets the "url" field.
func (m *FetchAttemptMutation) SetURL(s string) {
	m.url = &s
}

// URL returns the value of the "url" field in the mutation.
func (m *FetchAttemptMutation) URL() (r string, exists bool) {
	v := m.url
	if v == nil {
		return
	}
	return *v, true
}

// OldURL returns the old "url" field's value of the FetchAttempt entity.
// If the FetchAttempt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FetchAttemptMutation) OldURL(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldURL is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldURL requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldURL: %w", err)
	}
	return oldValue.URL, nil
}

// ResetURL resets all changes to the "url" field.
func (m *FetchAttemptMutation) ResetURL() {
	m.url = nil
}

// SetStatusCode sets the "status_code" field.
func (m *FetchAttemptMutation) SetStatusCode(i int) {
	m.status_code = &i
	m.addstatus_code = nil
}

// StatusCode returns the value of the "status_code" field in the mutation.
func (m *FetchAttemptMutation) StatusCode() (r int, exists bool) {
	v := m.status_code
	if v == nil {
		return
	}
	return *v, true
}

// OldStatusCode returns the old "status_code" field's value of the FetchAttempt entity.
// If the FetchAttempt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FetchAttemptMutation) OldStatusCode(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatusCode is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatusCode requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatusCode: %w", err)
	}
	return oldValue.StatusCode, nil
}

// AddStatusCode adds i to the "status_code" field.
func (m *FetchAttemptMutation) AddStatusCode(i int) {
	if m.addstatus_code != nil {
		*m.addstatus_code += i
	} else {
		m.addstatus_code = &i
	}
}

// AddedStatusCode returns the value that was added to the "status_code" field in this mutation.
func (m *FetchAttemptMutation) AddedStatusCode() (r int, exists bool) {
	v := m.addstatus_code
	if v == nil {
		return
	}
	return *v, true
}

// ResetStatusCode resets all changes to the "status_code" field.
func (m *FetchAttemptMutation) ResetStatusCode() {
	m.status_code = nil
	m.addstatus_code = nil
}

// SetErrorClass sets the "error_class" field.
func (m *FetchAttemptMutation) SetErrorClass(s string) {
	m.error_class = &s
}

// ErrorClass returns the value of the "error_class" field in the mutation.
func (m *FetchAttemptMutation) ErrorClass() (r string, exists bool) {
	v := m.error_class
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorClass returns the old "error_class" field's value of the FetchAttempt entity.
// If the FetchAttempt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FetchAttemptMutation) OldErrorClass(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorClass is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorClass requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorClass: %w", err)
	}
	return oldValue.ErrorClass, nil
}

// ClearErrorClass clears the value of the "error_class" field.
func (m *FetchAttemptMutation) ClearErrorClass() {
	m.error_class = nil
	m.clearedFields[fetchattempt.FieldErrorClass] = struct{}{}
}

// ErrorClassCleared returns if the "error_class" field was cleared in this mutation.
func (m *FetchAttemptMutation) ErrorClassCleared() bool {
	_, ok := m.clearedFields[fetchattempt.FieldErrorClass]
	return ok
}

// ResetErrorClass resets all changes to the "error_class" field.
func (m *FetchAttemptMutation) ResetErrorClass() {
	m.error_class = nil
	delete(m.clearedFields, fetchattempt.FieldErrorClass)
}

// SetLatencyMs sets the "latency_ms" field.
func (m *FetchAttemptMutation) SetLatencyMs(i int64) {
	m.latency_ms = &i
	m.addlatency_ms = nil
}

// LatencyMs returns the value of the "latency_ms" field in the mutation.
func (m *FetchAttemptMutation) LatencyMs() (r int64, exists bool) {
	v := m.latency_ms
	if v == nil {
		return
	}
	return *v, true
}

// OldLatencyMs returns the old "latency_ms" field's value of the FetchAttempt entity.
// If the FetchAttempt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FetchAttemptMutation) OldLatencyMs(ctx context.Context) (v int64, err error) {
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
func (m *FetchAttemptMutation) AddLatencyMs(i int64) {
	if m.addlatency_ms != nil {
		*m.addlatency_ms += i
	} else {
		m.addlatency_ms = &i
	}
}

// AddedLatencyMs returns the value that was added to the "latency_ms" field in this mutation.
func (m *FetchAttemptMutation) AddedLatencyMs() (r int64, exists bool) {
	v := m.addlatency_ms
	if v == nil {
		return
	}
	return *v, true
}

// ResetLatencyMs resets all changes to the "latency_ms" field.
func (m *FetchAttemptMutation) ResetLatencyMs() {
	m.latency_ms = nil
	m.addlatency_ms = nil
}

// SetBytes sets the "bytes" field.
func (m *FetchAttemptMutation) SetBytes(i int64) {
	m.bytes = &i
	m.addbytes = nil
}

// Bytes returns the value of the "bytes" field in the mutation.
func (m *FetchAttemptMutation) Bytes() (r int64, exists bool) {
	v := m.bytes
	if v == nil {
		return
	}
	return *v, true
}

// OldBytes returns the old "bytes" field's value of the FetchAttempt entity.
// If the FetchAttempt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FetchAttemptMutation) OldBytes(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBytes is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBytes requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBytes: %w", err)
	}
	return oldValue.Bytes, nil
}

// AddBytes adds i to the "bytes" field.
func (m *FetchAttemptMutation) AddBytes(i int64) {
	if m.addbytes != nil {
		*m.addbytes += i
	} else {
		m.addbytes = &i
	}
}

// AddedBytes returns the value that was added to the "bytes" field in this mutation.
func (m *FetchAttemptMutation) AddedBytes() (r int64, exists bool) {
	v := m.addbytes
	if v == nil {
		return
	}
	return *v, true
}

// ResetBytes resets all changes to the "bytes" field.
func (m *FetchAttemptMutation) ResetBytes() {
	m.bytes = nil
	m.addbytes = nil
}

// SetPool sets the "pool" field.
func (m *FetchAttemptMutation) SetPool(s string) {
	m.pool = &s
}

// Pool returns the value of the "pool" field in the mutation.
func (m *FetchAttemptMutation) Pool() (r string, exists bool) {
	v := m.pool
	if v == nil {
		return
	}
	return *v, true
}

// OldPool returns the old "pool" field's value of the FetchAttempt entity.
// If the FetchAttempt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FetchAttemptMutation) OldPool(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPool is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPool requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPool: %w", err)
	}
	return oldValue.Pool, nil
}

// ResetPool resets all changes to the "pool" field.
func (m *FetchAttemptMutation) ResetPool() {
	m.pool = nil
}

// SetSnapshotHash sets the "snapshot_hash" field.
func (m *FetchAttemptMutation) SetSnapshotHash(s string) {
	m.snapshot_hash = &s
}

// SnapshotHash returns the value of the "snapshot_hash" field in the mutation.
func (m *FetchAttemptMutation) SnapshotHash() (r string, exists bool) {
	v := m.snapshot_hash
	if v == nil {
		return
	}
	return *v, true
}

// OldSnapshotHash returns the old "snapshot_hash" field's value of the FetchAttempt entity.
// If the FetchAttempt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FetchAttemptMutation) OldSnapshotHash(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSnapshotHash is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSnapshotHash requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSnapshotHash: %w", err)
	}
	return oldValue.SnapshotHash, nil
}

// ClearSnapshotHash clears the value of the "snapshot_hash" field.
func (m *FetchAttemptMutation) ClearSnapshotHash() {
	m.snapshot_hash = nil
	m.clearedFields[fetchattempt.FieldSnapshotHash] = struct{}{}
}

// SnapshotHashCleared returns if the "snapshot_hash" field was cleared in this mutation.
func (m *FetchAttemptMutation) SnapshotHashCleared() bool {
	_, ok := m.clearedFields[fetchattempt.FieldSnapshotHash]
	return ok
}

// ResetSnapshotHash resets all changes to the "snapshot_hash" field.
func (m *FetchAttemptMutation) ResetSnapshotHash() {
	m.snapshot_hash = nil
	delete(m.clearedFields, fetchattempt.FieldSnapshotHash)
}

// SetCreatedAt sets the "created_at" field.
func (m *FetchAttemptMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *FetchAttemptMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the FetchAttempt entity.
// If the FetchAttempt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FetchAttemptMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *FetchAttemptMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearSource clears the "source" edge to the Source entity.
func (m *FetchAttemptMutation) ClearSource() {
	m.clearedsource = true
	m.clearedFields[fetchattempt.FieldSourceID] = struct{}{}
}

// SourceCleared reports if the "source" edge to the Source entity was cleared.
func (m *FetchAttemptMutation) SourceCleared() bool {
	return m.clearedsource
}

// SourceIDs returns the "source" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// SourceID instead. It exists only for internal usage by the builders.
func (m *FetchAttemptMutation) SourceIDs() (ids []int) {
	if id := m.source; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetSource resets all changes to the "source" edge.
func (m *FetchAttemptMutation) ResetSource() {
	m.source = nil
	m.clearedsource = false
}

// Where appends a list predicates to the FetchAttemptMutation builder.
func (m *FetchAttemptMutation) Where(ps ...predicate.FetchAttempt) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the FetchAttemptMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *FetchAttemptMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.FetchAttempt, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *FetchAttemptMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *FetchAttemptMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (FetchAttempt).
func (m *FetchAttemptMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *FetchAttemptMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.source != nil {
		fields = append(fields, fetchattempt.FieldSourceID)
	}
	if m.url != nil {
		fields = append(fields, fetchattempt.FieldURL)
	}
	if m.status_code != nil {
		fields = append(fields, fetchattempt.FieldStatusCode)
	}
	if m.error_class != nil {
		fields = append(fields, fetchattempt.FieldErrorClass)
	}
	if m.latency_ms != nil {
		fields = append(fields, fetchattempt.FieldLatencyMs)
	}
	if m.bytes != nil {
		fields = append(fields, fetchattempt.FieldBytes)
	}
	if m.pool != nil {
		fields = append(fields, fetchattempt.FieldPool)
	}
	if m.snapshot_hash != nil {
		fields = append(fields, fetchattempt.FieldSnapshotHash)
	}
	if m.created_at != nil {
		fields = append(fields, fetchattempt.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *FetchAttemptMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case fetchattempt.FieldSourceID:
		return m.SourceID()
	case fetchattempt.FieldURL:
		return m.URL()
	case fetchattempt.FieldStatusCode:
		return m.StatusCode()
	case fetchattempt.FieldErrorClass:
		return m.ErrorClass()
	case fetchattempt.FieldLatencyMs:
		return m.LatencyMs()
	case fetchattempt.FieldBytes:
		return m.Bytes()
	case fetchattempt.FieldPool:
		return m.Pool()
	case fetchattempt.FieldSnapshotHash:
		return m.SnapshotHash()
	case fetchattempt.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *FetchAttemptMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case fetchattempt.FieldSourceID:
		return m.OldSourceID(ctx)
	case fetchattempt.FieldURL:
		return m.OldURL(ctx)
	case fetchattempt.FieldStatusCode:
		return m.OldStatusCode(ctx)
	case fetchattempt.FieldErrorClass:
		return m.OldErrorClass(ctx)
	case fetchattempt.FieldLatencyMs:
		return m.OldLatencyMs(ctx)
	case fetchattempt.FieldBytes:
		return m.OldBytes(ctx)
	case fetchattempt.FieldPool:
		return m.OldPool(ctx)
	case fetchattempt.FieldSnapshotHash:
		return m.OldSnapshotHash(ctx)
	case fetchattempt.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown FetchAttempt field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *FetchAttemptMutation) SetField(name string, value ent.Value) error {
	switch name {
	case fetchattempt.FieldSourceID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSourceID(v)
		return nil
	case fetchattempt.FieldURL:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetURL(v)
		return nil
	case fetchattempt.FieldStatusCode:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatusCode(v)
		return nil
	case fetchattempt.FieldErrorClass:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorClass(v)
		return nil
	case fetchattempt.FieldLatencyMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLatencyMs(v)
		return nil
	case fetchattempt.FieldBytes:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBytes(v)
		return nil
	case fetchattempt.FieldPool:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPool(v)
		return nil
	case fetchattempt.FieldSnapshotHash:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSnapshotHash(v)
		return nil
	case fetchattempt.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown FetchAttempt field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *FetchAttemptMutation) AddedFields() []string {
	var fields []string
	if m.addstatus_code != nil {
		fields = append(fields, fetchattempt.FieldStatusCode)
	}
	if m.addlatency_ms != nil {
		fields = append(fields, fetchattempt.FieldLatencyMs)
	}
	if m.addbytes != nil {
		fields = append(fields, fetchattempt.FieldBytes)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *FetchAttemptMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case fetchattempt.FieldStatusCode:
		return m.AddedStatusCode()
	case fetchattempt.FieldLatencyMs:
		return m.AddedLatencyMs()
	case fetchattempt.FieldBytes:
		return m.AddedBytes()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *FetchAttemptMutation) AddField(name string, value ent.Value) error {
	switch name {
	case fetchattempt.FieldStatusCode:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddStatusCode(v)
		return nil
	case fetchattempt.FieldLatencyMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddLatencyMs(v)
		return nil
	case fetchattempt.FieldBytes:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddBytes(v)
		return nil
	}
	return fmt.Errorf("unknown FetchAttempt numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *FetchAttemptMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(fetchattempt.FieldErrorClass) {
		fields = append(fields, fetchattempt.FieldErrorClass)
	}
	if m.FieldCleared(fetchattempt.FieldSnapshotHash) {
		fields = append(fields, fetchattempt.FieldSnapshotHash)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *FetchAttemptMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *FetchAttemptMutation) ClearField(name string) error {
	switch name {
	case fetchattempt.FieldErrorClass:
		m.ClearErrorClass()
		return nil
	case fetchattempt.FieldSnapshotHash:
		m.ClearSnapshotHash()
		return nil
	}
	return fmt.Errorf("unknown FetchAttempt nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *FetchAttemptMutation) ResetField(name string) error {
	switch name {
	case fetchattempt.FieldSourceID:
		m.ResetSourceID()
		return nil
	case fetchattempt.FieldURL:
		m.ResetURL()
		return nil
	case fetchattempt.FieldStatusCode:
		m.ResetStatusCode()
		return nil
	case fetchattempt.FieldErrorClass:
		m.ResetErrorClass()
		return nil
	case fetchattempt.FieldLatencyMs:
		m.ResetLatencyMs()
		return nil
	case fetchattempt.FieldBytes:
		m.ResetBytes()
		return nil
	case fetchattempt.FieldPool:
		m.ResetPool()
		return nil
	case fetchattempt.FieldSnapshotHash:
		m.ResetSnapshotHash()
		return nil
	case fetchattempt.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown FetchAttempt field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *FetchAttemptMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.source != nil {
		edges = append(edges, fetchattempt.EdgeSource)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *FetchAttemptMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case fetchattempt.EdgeSource:
		if id := m.source; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *FetchAttemptMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *FetchAttemptMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *FetchAttemptMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedsource {
		edges = append(edges, fetchattempt.EdgeSource)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *FetchAttemptMutation) EdgeCleared(name string) bool {
	switch name {
	case fetchattempt.EdgeSource:
		return m.clearedsource
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *FetchAttemptMutation) ClearEdge(name string) error {
	switch name {
	case fetchattempt.EdgeSource:
		m.ClearSource()
		return nil
	}
	return fmt.Errorf("unknown FetchAttempt unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *FetchAttemptMutation) ResetEdge(name string) error {
	switch name {
	case fetchattempt.EdgeSource:
		m.ResetSource()
		return nil
	}
	return fmt.Errorf("unknown FetchAttempt edge %s", name)
}

// MergeAuditMutation represents an operation that mutates the MergeAudit nodes in the graph.
type MergeAuditMutation struct {
	config
	op               Op
	typ              string
	id               *int
	from_event_id    *int
	addfrom_event_id *int
	to_event_id      *int
	addto_event_id   *int
	reason_code      *string
	evidence_json    *map[string]interface{}
	created_at       *time.Time
	clearedFields    map[string]struct{}
	done             bool
	oldValue         func(context.Context) (*MergeAudit, error)
	predicates       []predicate.MergeAudit
}

var _ ent.Mutation = (*MergeAuditMutation)(nil)

// mergeauditOption allows management of the mutation configuration using functional options.
type mergeauditOption func(*MergeAuditMutation)

// newMergeAuditMutation creates new mutation for the MergeAudit entity.
func newMergeAuditMutation(c config, op Op, opts ...mergeauditOption) *MergeAuditMutation {
	m := &MergeAuditMutation{
		config:        c,
		op:            op,
		typ:           TypeMergeAudit,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withMergeAuditID sets the ID field of the mutation.
func withMergeAuditID(id int) mergeauditOption {
	return func(m *MergeAuditMutation) {
		var (
			err   error
			once  sync.Once
			value *MergeAudit
		)
		m.oldValue = func(ctx context.Context) (*MergeAudit, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().MergeAudit.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withMergeAudit sets the old MergeAudit of the mutation.
func withMergeAudit(node *MergeAudit) mergeauditOption {
	return func(m *MergeAuditMutation) {
		m.oldValue = func(context.Context) (*MergeAudit, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m MergeAuditMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m MergeAuditMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *MergeAuditMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *MergeAuditMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().MergeAudit.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetFromEventID sets the "from_event_id" field.
func (m *MergeAuditMutation) SetFromEventID(i int) {
	m.from_event_id = &i
	m.addfrom_event_id = nil
}

// FromEventID returns the value of the "from_event_id" field in the mutation.
func (m *MergeAuditMutation) FromEventID() (r int, exists bool) {
	v := m.from_event_id
	if v == nil {
		return
	}
	return *v, true
}

// OldFromEventID returns the old "from_event_id" field's value of the MergeAudit entity.
// If the MergeAudit object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MergeAuditMutation) OldFromEventID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFromEventID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFromEventID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFromEventID: %w", err)
	}
	return oldValue.FromEventID, nil
}

// AddFromEventID adds i to the "from_event_id" field.
func (m *MergeAuditMutation) AddFromEventID(i int) {
	if m.addfrom_event_id != nil {
		*m.addfrom_event_id += i
	} else {
		m.addfrom_event_id = &i
	}
}

// AddedFromEventID returns the value that was added to the "from_event_id" field in this mutation.
func (m *MergeAuditMutation) AddedFromEventID() (r int, exists bool) {
	v := m.addfrom_event_id
	if v == nil {
		return
	}
	return *v, true
}

// ResetFromEventID resets all changes to the "from_event_id" field.
func (m *MergeAuditMutation) ResetFromEventID() {
	m.from_event_id = nil
	m.addfrom_event_id = nil
}

// SetToEventID sets the "to_event_id" field.
func (m *MergeAuditMutation) SetToEventID(i int) {
	m.to_event_id = &i
	m.addto_event_id = nil
}

// ToEventID returns the value of the "to_event_id" field in the mutation.
func (m *MergeAuditMutation) ToEventID() (r int, exists bool) {
	v := m.to_event_id
	if v == nil {
		return
	}
	return *v, true
}

// OldToEventID returns the old "to_event_id" field's value of the MergeAudit entity.
// If the MergeAudit object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MergeAuditMutation) OldToEventID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldToEventID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldToEventID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldToEventID: %w", err)
	}
	return oldValue.ToEventID, nil
}

// AddToEventID adds i to the "to_event_id" field.
func (m *MergeAuditMutation) AddToEventID(i int) {
	if m.addto_event_id != nil {
		*m.addto_event_id += i
	} else {
		m.addto_event_id = &i
	}
}

// AddedToEventID returns the value that was added to the "to_event_id" field in this mutation.
func (m *MergeAuditMutation) AddedToEventID() (r int, exists bool) {
	v := m.addto_event_id
	if v == nil {
		return
	}
	return *v, true
}

// ResetToEventID resets all changes to the "to_event_id" field.
func (m *MergeAuditMutation) ResetToEventID() {
	m.to_event_id = nil
	m.addto_event_id = nil
}

// SetReasonCode sets the "reason_code" field.
func (m *MergeAuditMutation) SetReasonCode(s string) {
	m.reason_code = &s
}

// ReasonCode returns the value of the "reason_code" field in the mutation.
func (m *MergeAuditMutation) ReasonCode() (r string, exists bool) {
	v := m.reason_code
	if v == nil {
		return
	}
	return *v, true
}

// OldReasonCode returns the old "reason_code" field's value of the MergeAudit entity.
// If the MergeAudit object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MergeAuditMutation) OldReasonCode(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReasonCode is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReasonCode requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReasonCode: %w", err)
	}
	return oldValue.ReasonCode, nil
}

// ResetReasonCode resets all changes to the "reason_code" field.
func (m *MergeAuditMutation) ResetReasonCode() {
	m.reason_code = nil
}

// SetEvidenceJSON sets the "evidence_json" field.
func (m *MergeAuditMutation) SetEvidenceJSON(value map[string]interface{}) {
	m.evidence_json = &value
}

// EvidenceJSON returns the value of the "evidence_json" field in the mutation.
func (m *MergeAuditMutation) EvidenceJSON() (r map[string]interface{}, exists bool) {
	v := m.evidence_json
	if v == nil {
		return
	}
	return *v, true
}

// OldEvidenceJSON returns the old "evidence_json" field's value of the MergeAudit entity.
// If the MergeAudit object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MergeAuditMutation) OldEvidenceJSON(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEvidenceJSON is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEvidenceJSON requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEvidenceJSON: %w", err)
	}
	return oldValue.EvidenceJSON, nil
}

// ClearEvidenceJSON clears the value of the "evidence_json" field.
func (m *MergeAuditMutation) ClearEvidenceJSON() {
	m.evidence_json = nil
	m.clearedFields[mergeaudit.FieldEvidenceJSON] = struct{}{}
}

// EvidenceJSONCleared returns if the "evidence_json" field was cleared in this mutation.
func (m *MergeAuditMutation) EvidenceJSONCleared() bool {
	_, ok := m.clearedFields[mergeaudit.FieldEvidenceJSON]
	return ok
}

// ResetEvidenceJSON resets all changes to the "evidence_json" field.
func (m *MergeAuditMutation) ResetEvidenceJSON() {
	m.evidence_json = nil
	delete(m.clearedFields, mergeaudit.FieldEvidenceJSON)
}

// SetCreatedAt sets the "created_at" field.
func (m *MergeAuditMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *MergeAuditMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the MergeAudit entity.
// If the MergeAudit object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MergeAuditMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *MergeAuditMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the MergeAuditMutation builder.
func (m *MergeAuditMutation) Where(ps ...predicate.MergeAudit) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the MergeAuditMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *MergeAuditMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.MergeAudit, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *MergeAuditMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *MergeAuditMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (MergeAudit).
func (m *MergeAuditMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *MergeAuditMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.from_event_id != nil {
		fields = append(fields, mergeaudit.FieldFromEventID)
	}
	if m.to_event_id != nil {
		fields = append(fields, mergeaudit.FieldToEventID)
	}
	if m.reason_code != nil {
		fields = append(fields, mergeaudit.FieldReasonCode)
	}
	if m.evidence_json != nil {
		fields = append(fields, mergeaudit.FieldEvidenceJSON)
	}
	if m.created_at != nil {
		fields = append(fields, mergeaudit.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *MergeAuditMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case mergeaudit.FieldFromEventID:
		return m.FromEventID()
	case mergeaudit.FieldToEventID:
		return m.ToEventID()
	case mergeaudit.FieldReasonCode:
		return m.ReasonCode()
	case mergeaudit.FieldEvidenceJSON:
		return m.EvidenceJSON()
	case mergeaudit.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *MergeAuditMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case mergeaudit.FieldFromEventID:
		return m.OldFromEventID(ctx)
	case mergeaudit.FieldToEventID:
		return m.OldToEventID(ctx)
	case mergeaudit.FieldReasonCode:
		return m.OldReasonCode(ctx)
	case mergeaudit.FieldEvidenceJSON:
		return m.OldEvidenceJSON(ctx)
	case mergeaudit.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown MergeAudit field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *MergeAuditMutation) SetField(name string, value ent.Value) error {
	switch name {
	case mergeaudit.FieldFromEventID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFromEventID(v)
		return nil
	case mergeaudit.FieldToEventID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetToEventID(v)
		return nil
	case mergeaudit.FieldReasonCode:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReasonCode(v)
		return nil
	case mergeaudit.FieldEvidenceJSON:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEvidenceJSON(v)
		return nil
	case mergeaudit.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown MergeAudit field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *MergeAuditMutation) AddedFields() []string {
	var fields []string
	if m.addfrom_event_id != nil {
		fields = append(fields, mergeaudit.FieldFromEventID)
	}
	if m.addto_event_id != nil {
		fields = append(fields, mergeaudit.FieldToEventID)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *MergeAuditMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case mergeaudit.FieldFromEventID:
		return m.AddedFromEventID()
	case mergeaudit.FieldToEventID:
		return m.AddedToEventID()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *MergeAuditMutation) AddField(name string, value ent.Value) error {
	switch name {
	case mergeaudit.FieldFromEventID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddFromEventID(v)
		return nil
	case mergeaudit.FieldToEventID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddToEventID(v)
		return nil
	}
	return fmt.Errorf("unknown MergeAudit numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *MergeAuditMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(mergeaudit.FieldEvidenceJSON) {
		fields = append(fields, mergeaudit.FieldEvidenceJSON)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *MergeAuditMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *MergeAuditMutation) ClearField(name string) error {
	switch name {
	case mergeaudit.FieldEvidenceJSON:
		m.ClearEvidenceJSON()
		return nil
	}
	return fmt.Errorf("unknown MergeAudit nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *MergeAuditMutation) ResetField(name string) error {
	switch name {
	case mergeaudit.FieldFromEventID:
		m.ResetFromEventID()
		return nil
	case mergeaudit.FieldToEventID:
		m.ResetToEventID()
		return nil
	case mergeaudit.FieldReasonCode:
		m.ResetReasonCode()
		return nil
	case mergeaudit.FieldEvidenceJSON:
		m.ResetEvidenceJSON()
		return nil
	case mergeaudit.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown MergeAudit field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *MergeAuditMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *MergeAuditMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *MergeAuditMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *MergeAuditMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *MergeAuditMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *MergeAuditMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *MergeAuditMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown MergeAudit unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *MergeAuditMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown MergeAudit edge %s", name)
}

// SnapshotMutation represents an operation that mutates the Snapshot nodes in the graph.
type SnapshotMutation struct {
	config
	op               Op
	typ              string
	id               *int
	url              *string
	fetched_at       *time.Time
	response_headers *map[string]string
	body             *[]byte
	content_hash     *string
	snapshot_hash    *string
	clearedFields    map[string]struct{}
	source           *int
	clearedsource    bool
	done             bool
	oldValue         func(context.Context) (*Snapshot, error)
	predicates       []predicate.Snapshot
}

var _ ent.Mutation = (*SnapshotMutation)(nil)

// snapshotOption allows management of the mutation configuration using functional options.
type snapshotOption func(*SnapshotMutation)

// newSnapshotMutation creates new mutation for the Snapshot entity.
func newSnapshotMutation(c config, op Op, opts ...snapshotOption) *SnapshotMutation {
	m := &SnapshotMutation{
		config:        c,
		op:            op,
		typ:           TypeSnapshot,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withSnapshotID sets the ID field of the mutation.
func withSnapshotID(id int) snapshotOption {
	return func(m *SnapshotMutation) {
		var (
			err   error
			once  sync.Once
			value *Snapshot
		)
		m.oldValue = func(ctx context.Context) (*Snapshot, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Snapshot.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withSnapshot sets the old Snapshot of the mutation.
func withSnapshot(node *Snapshot) snapshotOption {
	return func(m *SnapshotMutation) {
		m.oldValue = func(context.Context) (*Snapshot, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m SnapshotMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m SnapshotMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *SnapshotMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *SnapshotMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Snapshot.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSourceID sets the "source_id" field.
func (m *SnapshotMutation) SetSourceID(i int) {
	m.source = &i
}

// SourceID returns the value of the "source_id" field in the mutation.
func (m *SnapshotMutation) SourceID() (r int, exists bool) {
	v := m.source
	if v == nil {
		return
	}
	return *v, true
}

// OldSourceID returns the old "source_id" field's value of the Snapshot entity.
// If the Snapshot object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SnapshotMutation) OldSourceID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSourceID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSourceID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSourceID: %w", err)
	}
	return oldValue.SourceID, nil
}

// ResetSourceID resets all changes to the "source_id" field.
func (m *SnapshotMutation) ResetSourceID() {
	m.source = nil
}

// SetURL sets the "url" field.
func (m *SnapshotMutation) SetURL(s string) {
	m.url = &s
}

// URL returns the value of the "url" field in the mutation.
func (m *SnapshotMutation) URL() (r string, exists bool) {
	v := m.url
	if v == nil {
		return
	}
	return *v, true
}

// OldURL returns the old "url" field's value of the Snapshot entity.
// If the Snapshot object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SnapshotMutation) OldURL(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldURL is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldURL requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldURL: %w", err)
	}
	return oldValue.URL, nil
}

// ResetURL resets all changes to the "url" field.
func (m *SnapshotMutation) ResetURL() {
	m.url = nil
}

// SetFetchedAt sets the "fetched_at" field.
func (m *SnapshotMutation) SetFetchedAt(t time.Time) {
	m.fetched_at = &t
}

// FetchedAt returns the value of the "fetched_at" field in the mutation.
func (m *SnapshotMutation) FetchedAt() (r time.Time, exists bool) {
	v := m.fetched_at
	if v == nil {
		return
	}
	return *v, true
}

// OldFetchedAt returns the old "fetched_at" field's value of the Snapshot entity.
// If the Snapshot object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SnapshotMutation) OldFetchedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFetchedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFetchedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFetchedAt: %w", err)
	}
	return oldValue.FetchedAt, nil
}

// ResetFetchedAt resets all changes to the "fetched_at" field.
func (m *SnapshotMutation) ResetFetchedAt() {
	m.fetched_at = nil
}

// SetResponseHeaders sets the "response_headers" field.
func (m *SnapshotMutation) SetResponseHeaders(value map[string]string) {
	m.response_headers = &value
}

// ResponseHeaders returns the value of the "response_headers" field in the mutation.
func (m *SnapshotMutation) ResponseHeaders() (r map[string]string, exists bool) {
	v := m.response_headers
	if v == nil {
		return
	}
	return *v, true
}

// OldResponseHeaders returns the old "response_headers" field's value of the Snapshot entity.
// If the Snapshot object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SnapshotMutation) OldResponseHeaders(ctx context.Context) (v map[string]string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResponseHeaders is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResponseHeaders requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResponseHeaders: %w", err)
	}
	return oldValue.ResponseHeaders, nil
}

// ClearResponseHeaders clears the value of the "response_headers" field.
func (m *SnapshotMutation) ClearResponseHeaders() {
	m.response_headers = nil
	m.clearedFields[snapshot.FieldResponseHeaders] = struct{}{}
}

// ResponseHeadersCleared returns if the "response_headers" field was cleared in this mutation.
func (m *SnapshotMutation) ResponseHeadersCleared() bool {
	_, ok := m.clearedFields[snapshot.FieldResponseHeaders]
	return ok
}

// ResetResponseHeaders resets all changes to the "response_headers" field.
func (m *SnapshotMutation) ResetResponseHeaders() {
	m.response_headers = nil
	delete(m.clearedFields, snapshot.FieldResponseHeaders)
}

// SetBody sets the "body" field.
func (m *SnapshotMutation) SetBody(b []byte) {
	m.body = &b
}

// Body returns the value of the "body" field in the mutation.
func (m *SnapshotMutation) Body() (r []byte, exists bool) {
	v := m.body
	if v == nil {
		return
	}
	return *v, true
}

// OldBody returns the old "body" field's value of the Snapshot entity.
// If the Snapshot object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SnapshotMutation) OldBody(ctx context.Context) (v []byte, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBody is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBody requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBody: %w", err)
	}
	return oldValue.Body, nil
}

// ResetBody resets all changes to the "body" field.
func (m *SnapshotMutation) ResetBody() {
	m.body = nil
}

// SetContentHash sets the "content_hash" field.
func (m *SnapshotMutation) SetContentHash(s string) {
	m.content_hash = &s
}

// ContentHash returns the value of the "content_hash" field in the mutation.
func (m *SnapshotMutation) ContentHash() (r string, exists bool) {
	v := m.content_hash
	if v == nil {
		return
	}
	return *v, true
}

// OldContentHash returns the old "content_hash" field's value of the Snapshot entity.
// If the Snapshot object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SnapshotMutation) OldContentHash(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContentHash is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContentHash requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContentHash: %w", err)
	}
	return oldValue.ContentHash, nil
}

// ResetContentHash resets all changes to the "content_hash" field.
func (m *SnapshotMutation) ResetContentHash() {
	m.content_hash = nil
}

// SetSnapshotHash sets the "snapshot_hash" field.
func (m *SnapshotMutation) SetSnapshotHash(s string) {
	m.snapshot_hash = &s
}

// SnapshotHash returns the value of the "snapshot_hash" field in the mutation.
func (m *SnapshotMutation) SnapshotHash() (r string, exists bool) {
	v := m.snapshot_hash
	if v == nil {
		return
	}
	return *v, true
}

// OldSnapshotHash returns the old "snapshot_hash" field's value of the Snapshot entity.
// If the Snapshot object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SnapshotMutation) OldSnapshotHash(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSnapshotHash is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSnapshotHash requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSnapshotHash: %w", err)
	}
	return oldValue.SnapshotHash, nil
}

// ResetSnapshotHash resets all changes to the "snapshot_hash" field.
func (m *SnapshotMutation) ResetSnapshotHash() {
	m.snapshot_hash = nil
}

// ClearSource clears the "source" edge to the Source entity.
func (m *SnapshotMutation) ClearSource() {
	m.clearedsource = true
	m.clearedFields[snapshot.FieldSourceID] = struct{}{}
}

// SourceCleared reports if the "source" edge to the Source entity was cleared.
func (m *SnapshotMutation) SourceCleared() bool {
	return m.clearedsource
}

// SourceIDs returns the "source" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// SourceID instead. It exists only for internal usage by the builders.
func (m *SnapshotMutation) SourceIDs() (ids []int) {
	if id := m.source; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetSource resets all changes to the "source" edge.
func (m *SnapshotMutation) ResetSource() {
	m.source = nil
	m.clearedsource = false
}

// Where appends a list predicates to the SnapshotMutation builder.
func (m *SnapshotMutation) Where(ps ...predicate.Snapshot) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the SnapshotMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *SnapshotMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Snapshot, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *SnapshotMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *SnapshotMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Snapshot).
func (m *SnapshotMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *SnapshotMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.source != nil {
		fields = append(fields, snapshot.FieldSourceID)
	}
	if m.url != nil {
		fields = append(fields, snapshot.FieldURL)
	}
	if m.fetched_at != nil {
		fields = append(fields, snapshot.FieldFetchedAt)
	}
	if m.response_headers != nil {
		fields = append(fields, snapshot.FieldResponseHeaders)
	}
	if m.body != nil {
		fields = append(fields, snapshot.FieldBody)
	}
	if m.content_hash != nil {
		fields = append(fields, snapshot.FieldContentHash)
	}
	if m.snapshot_hash != nil {
		fields = append(fields, snapshot.FieldSnapshotHash)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *SnapshotMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case snapshot.FieldSourceID:
		return m.SourceID()
	case snapshot.FieldURL:
		return m.URL()
	case snapshot.FieldFetchedAt:
		return m.FetchedAt()
	case snapshot.FieldResponseHeaders:
		return m.ResponseHeaders()
	case snapshot.FieldBody:
		return m.Body()
	case snapshot.FieldContentHash:
		return m.ContentHash()
	case snapshot.FieldSnapshotHash:
		return m.SnapshotHash()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *SnapshotMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case snapshot.FieldSourceID:
		return m.OldSourceID(ctx)
	case snapshot.FieldURL:
		return m.OldURL(ctx)
	case snapshot.FieldFetchedAt:
		return m.OldFetchedAt(ctx)
	case snapshot.FieldResponseHeaders:
		return m.OldResponseHeaders(ctx)
	case snapshot.FieldBody:
		return m.OldBody(ctx)
	case snapshot.FieldContentHash:
		return m.OldContentHash(ctx)
	case snapshot.FieldSnapshotHash:
		return m.OldSnapshotHash(ctx)
	}
	return nil, fmt.Errorf("unknown Snapshot field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SnapshotMutation) SetField(name string, value ent.Value) error {
	switch name {
	case snapshot.FieldSourceID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSourceID(v)
		return nil
	case snapshot.FieldURL:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetURL(v)
		return nil
	case snapshot.FieldFetchedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFetchedAt(v)
		return nil
	case snapshot.FieldResponseHeaders:
		v, ok := value.(map[string]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResponseHeaders(v)
		return nil
	case snapshot.FieldBody:
		v, ok := value.([]byte)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBody(v)
		return nil
	case snapshot.FieldContentHash:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContentHash(v)
		return nil
	case snapshot.FieldSnapshotHash:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSnapshotHash(v)
		return nil
	}
	return fmt.Errorf("unknown Snapshot field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *SnapshotMutation) AddedFields() []string {
	var fields []string
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *SnapshotMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SnapshotMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Snapshot numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *SnapshotMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(snapshot.FieldResponseHeaders) {
		fields = append(fields, snapshot.FieldResponseHeaders)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *SnapshotMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *SnapshotMutation) ClearField(name string) error {
	switch name {
	case snapshot.FieldResponseHeaders:
		m.ClearResponseHeaders()
		return nil
	}
	return fmt.Errorf("unknown Snapshot nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *SnapshotMutation) ResetField(name string) error {
	switch name {
	case snapshot.FieldSourceID:
		m.ResetSourceID()
		return nil
	case snapshot.FieldURL:
		m.ResetURL()
		return nil
	case snapshot.FieldFetchedAt:
		m.ResetFetchedAt()
		return nil
	case snapshot.FieldResponseHeaders:
		m.ResetResponseHeaders()
		return nil
	case snapshot.FieldBody:
		m.ResetBody()
		return nil
	case snapshot.FieldContentHash:
		m.ResetContentHash()
		return nil
	case snapshot.FieldSnapshotHash:
		m.ResetSnapshotHash()
		return nil
	}
	return fmt.Errorf("unknown Snapshot field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *SnapshotMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.source != nil {
		edges = append(edges, snapshot.EdgeSource)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *SnapshotMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case snapshot.EdgeSource:
		if id := m.source; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *SnapshotMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *SnapshotMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *SnapshotMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedsource {
		edges = append(edges, snapshot.EdgeSource)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *SnapshotMutation) EdgeCleared(name string) bool {
	switch name {
	case snapshot.EdgeSource:
		return m.clearedsource
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *SnapshotMutation) ClearEdge(name string) error {
	switch name {
	case snapshot.EdgeSource:
		m.ClearSource()
		return nil
	}
	return fmt.Errorf("unknown Snapshot unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *SnapshotMutation) ResetEdge(name string) error {
	switch name {
	case snapshot.EdgeSource:
		m.ResetSource()
		return nil
	}
	return fmt.Errorf("unknown Snapshot edge %s", name)
}

// SourceMutation represents an operation that mutates the Source nodes in the graph.
type SourceMutation struct {
	config
	op                    Op
	typ                   string
	id                    *int
	domain                *string
	name                  *string
	tier                  *int
	addtier               *int
	is_official           *bool
	language              *string
	enabled               *bool
	profile               *map[string]interface{}
	source_class          *string
	editorial_group       *string
	created_at            *time.Time
	updated_at            *time.Time
	clearedFields         map[string]struct{}
	snapshots             map[int]struct{}
	removedsnapshots      map[int]struct{}
	clearedsnapshots      bool
	fetch_attempts        map[int]struct{}
	removedfetch_attempts map[int]struct{}
	clearedfetch_attempts bool
	documents             map[int]struct{}
	removeddocuments      map[int]struct{}
	cleareddocuments      bool
	done                  bool
	oldValue              func(context.Context) (*Source, error)
	predicates            []predicate.Source
}

var _ ent.Mutation = (*SourceMutation)(nil)

// sourceOption allows management of the mutation configuration using functional options.
type sourceOption func(*SourceMutation)

// newSourceMutation creates new mutation for the Source entity.
func newSourceMutation(c config, op Op, opts ...sourceOption) *SourceMutation {
	m := &SourceMutation{
		config:        c,
		op:            op,
		typ:           TypeSource,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withSourceID sets the ID field of the mutation.
func withSourceID(id int) sourceOption {
	return func(m *SourceMutation) {
		var (
			err   error
			once  sync.Once
			value *Source
		)
		m.oldValue = func(ctx context.Context) (*Source, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Source.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withSource sets the old Source of the mutation.
func withSource(node *Source) sourceOption {
	return func(m *SourceMutation) {
		m.oldValue = func(context.Context) (*Source, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m SourceMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m SourceMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *SourceMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *SourceMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Source.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetDomain sets the "domain" field.
func (m *SourceMutation) SetDomain(s string) {
	m.domain = &s
}

// Domain returns the value of the "domain" field in the mutation.
func (m *SourceMutation) Domain() (r string, exists bool) {
	v := m.domain
	if v == nil {
		return
	}
	return *v, true
}

// OldDomain returns the old "domain" field's value of the Source entity.
// If the Source object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SourceMutation) OldDomain(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDomain is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDomain requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDomain: %w", err)
	}
	return oldValue.Domain, nil
}

// ResetDomain resets all changes to the "domain" field.
func (m *SourceMutation) ResetDomain() {
	m.domain = nil
}

// SetName sets the "name" field.
func (m *SourceMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *SourceMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Source entity.
// If the Source object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SourceMutation) OldName(ctx context.Context) (v string, err error) {
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
func (m *SourceMutation) ResetName() {
	m.name = nil
}

// SetTier sets the "tier" field.
func (m *SourceMutation) SetTier(i int) {
	m.tier = &i
	m.addtier = nil
}

// Tier returns the value of the "tier" field in the mutation.
func (m *SourceMutation) Tier() (r int, exists bool) {
	v := m.tier
	if v == nil {
		return
	}
	return *v, true
}

// OldTier returns the old "tier" field's value of the Source entity.
// If the Source object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SourceMutation) OldTier(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTier is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTier requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTier: %w", err)
	}
	return oldValue.Tier, nil
}

// AddTier adds i to the "tier" field.
func (m *SourceMutation) AddTier(i int) {
	if m.addtier != nil {
		*m.addtier += i
	} else {
		m.addtier = &i
	}
}

// AddedTier returns the value that was added to the "tier" field in this mutation.
func (m *SourceMutation) AddedTier() (r int, exists bool) {
	v := m.addtier
	if v == nil {
		return
	}
	return *v, true
}

// ResetTier resets all changes to the "tier" field.
func (m *SourceMutation) ResetTier() {
	m.tier = nil
	m.addtier = nil
}

// SetIsOfficial sets the "is_official" field.
func (m *SourceMutation) SetIsOfficial(b bool) {
	m.is_official = &b
}

// IsOfficial returns the value of the "is_official" field in the mutation.
func (m *SourceMutation) IsOfficial() (r bool, exists bool) {
	v := m.is_official
	if v == nil {
		return
	}
	return *v, true
}

// OldIsOfficial returns the old "is_official" field's value of the Source entity.
// If the Source object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SourceMutation) OldIsOfficial(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsOfficial is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsOfficial requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsOfficial: %w", err)
	}
	return oldValue.IsOfficial, nil
}

// ResetIsOfficial resets all changes to the "is_official" field.
func (m *SourceMutation) ResetIsOfficial() {
	m.is_official = nil
}

// SetLanguage sets the "language" field.
func (m *SourceMutation) SetLanguage(s string) {
	m.language = &s
}

// Language returns the value of the "language" field in the mutation.
func (m *SourceMutation) Language() (r string, exists bool) {
	v := m.language
	if v == nil {
		return
	}
	return *v, true
}

// OldLanguage returns the old "language" field's value of the Source entity.
// If the Source object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SourceMutation) OldLanguage(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLanguage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLanguage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLanguage: %w", err)
	}
	return oldValue.Language, nil
}

// ResetLanguage resets all changes to the "language" field.
func (m *SourceMutation) ResetLanguage() {
	m.language = nil
}

// SetEnabled sets the "enabled" field.
func (m *SourceMutation) SetEnabled(b bool) {
	m.enabled = &b
}

// Enabled returns the value of the "enabled" field in the mutation.
func (m *SourceMutation) Enabled() (r bool, exists bool) {
	v := m.enabled
	if v == nil {
		return
	}
	return *v, true
}

// OldEnabled returns the old "enabled" field's value of the Source entity.
// If the Source object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SourceMutation) OldEnabled(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEnabled is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEnabled requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEnabled: %w", err)
	}
	return oldValue.Enabled, nil
}

// ResetEnabled resets all changes to the "enabled" field.
func (m *SourceMutation) ResetEnabled() {
	m.enabled = nil
}

// SetProfile sets the "profile" field.
func (m *SourceMutation) SetProfile(value map[string]interface{}) {
	m.profile = &value
}

// Profile returns the value of the "profile" field in the mutation.
func (m *SourceMutation) Profile() (r map[string]interface{}, exists bool) {
	v := m.profile
	if v == nil {
		return
	}
	return *v, true
}

// OldProfile returns the old "profile" field's value of the Source entity.
// If the Source object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SourceMutation) OldProfile(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProfile is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProfile requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProfile: %w", err)
	}
	return oldValue.Profile, nil
}

// ResetProfile resets all changes to the "profile" field.
func (m *SourceMutation) ResetProfile() {
	m.profile = nil
}

// SetSourceClass sets the "source_class" field.
func (m *SourceMutation) SetSourceClass(s string) {
	m.source_class = &s
}

// SourceClass returns the value of the "source_class" field in the mutation.
func (m *SourceMutation) SourceClass() (r string, exists bool) {
	v := m.source_class
	if v == nil {
		return
	}
	return *v, true
}

// OldSourceClass returns the old "source_class" field's value of the Source entity.
// If the Source object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SourceMutation) OldSourceClass(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSourceClass is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSourceClass requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSourceClass: %w", err)
	}
	return oldValue.SourceClass, nil
}

// ClearSourceClass clears the value of the "source_class" field.
func (m *SourceMutation) ClearSourceClass() {
	m.source_class = nil
	m.clearedFields[source.FieldSourceClass] = struct{}{}
}

// SourceClassCleared returns if the "source_class" field was cleared in this mutation.
func (m *SourceMutation) SourceClassCleared() bool {
	_, ok := m.clearedFields[source.FieldSourceClass]
	return ok
}

// ResetSourceClass resets all changes to the "source_class" field.
func (m *SourceMutation) ResetSourceClass() {
	m.source_class = nil
	delete(m.clearedFields, source.FieldSourceClass)
}

// SetEditorialGroup sets the "editorial_group" field.
func (m *SourceMutation) SetEditorialGroup(s string) {
	m.editorial_group = &s
}

// EditorialGroup returns the value of the "editorial_group" field in the mutation.
func (m *SourceMutation) EditorialGroup() (r string, exists bool) {
	v := m.editorial_group
	if v == nil {
		return
	}
	return *v, true
}

// OldEditorialGroup returns the old "editorial_group" field's value of the Source entity.
// If the Source object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SourceMutation) OldEditorialGroup(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEditorialGroup is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEditorialGroup requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEditorialGroup: %w", err)
	}
	return oldValue.EditorialGroup, nil
}

// ClearEditorialGroup clears the value of the "editorial_group" field.
func (m *SourceMutation) ClearEditorialGroup() {
	m.editorial_group = nil
	m.clearedFields[source.FieldEditorialGroup] = struct{}{}
}

// EditorialGroupCleared returns if the "editorial_group" field was cleared in this mutation.
func (m *SourceMutation) EditorialGroupCleared() bool {
	_, ok := m.clearedFields[source.FieldEditorialGroup]
	return ok
}

// ResetEditorialGroup resets all changes to the "editorial_group" field.
func (m *SourceMutation) ResetEditorialGroup() {
	m.editorial_group = nil
	delete(m.clearedFields, source.FieldEditorialGroup)
}

// SetCreatedAt sets the "created_at" field.
func (m *SourceMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *SourceMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Source entity.
// If the Source object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SourceMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *SourceMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *SourceMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *SourceMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Source entity.
// If the Source object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SourceMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *SourceMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// AddSnapshotIDs adds the "snapshots" edge to the Snapshot entity by ids.
func (m *SourceMutation) AddSnapshotIDs(ids ...int) {
	if m.snapshots == nil {
		m.snapshots = make(map[int]struct{})
	}
	for i := range ids {
		m.snapshots[ids[i]] = struct{}{}
	}
}

// ClearSnapshots clears the "snapshots" edge to the Snapshot entity.
func (m *SourceMutation) ClearSnapshots() {
	m.clearedsnapshots = true
}

// SnapshotsCleared reports if the "snapshots" edge to the Snapshot entity was cleared.
func (m *SourceMutation) SnapshotsCleared() bool {
	return m.clearedsnapshots
}

// RemoveSnapshotIDs removes the "snapshots" edge to the Snapshot entity by IDs.
func (m *SourceMutation) RemoveSnapshotIDs(ids ...int) {
	if m.removedsnapshots == nil {
		m.removedsnapshots = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.snapshots, ids[i])
		m.removedsnapshots[ids[i]] = struct{}{}
	}
}

// RemovedSnapshots returns the removed IDs of the "snapshots" edge to the Snapshot entity.
func (m *SourceMutation) RemovedSnapshotsIDs() (ids []int) {
	for id := range m.removedsnapshots {
		ids = append(ids, id)
	}
	return
}

// SnapshotsIDs returns the "snapshots" edge IDs in the mutation.
func (m *SourceMutation) SnapshotsIDs() (ids []int) {
	for id := range m.snapshots {
		ids = append(ids, id)
	}
	return
}

// ResetSnapshots resets all changes to the "snapshots" edge.
func (m *SourceMutation) ResetSnapshots() {
	m.snapshots = nil
	m.clearedsnapshots = false
	m.removedsnapshots = nil
}

// AddFetchAttemptIDs adds the "fetch_attempts" edge to the FetchAttempt entity by ids.
func (m *SourceMutation) AddFetchAttemptIDs(ids ...int) {
	if m.fetch_attempts == nil {
		m.fetch_attempts = make(map[int]struct{})
	}
	for i := range ids {
		m.fetch_attempts[ids[i]] = struct{}{}
	}
}

// ClearFetchAttempts clears the "fetch_attempts" edge to the FetchAttempt entity.
func (m *SourceMutation) ClearFetchAttempts() {
	m.clearedfetch_attempts = true
}

// FetchAttemptsCleared reports if the "fetch_attempts" edge to the FetchAttempt entity was cleared.
func (m *SourceMutation) FetchAttemptsCleared() bool {
	return m.clearedfetch_attempts
}

// RemoveFetchAttemptIDs removes the "fetch_attempts" edge to the FetchAttempt entity by IDs.
func (m *SourceMutation) RemoveFetchAttemptIDs(ids ...int) {
	if m.removedfetch_attempts == nil {
		m.removedfetch_attempts = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.fetch_attempts, ids[i])
		m.removedfetch_attempts[ids[i]] = struct{}{}
	}
}

// RemovedFetchAttempts returns the removed IDs of the "fetch_attempts" edge to the FetchAttempt entity.
func (m *SourceMutation) RemovedFetchAttemptsIDs() (ids []int) {
	for id := range m.removedfetch_attempts {
		ids = append(ids, id)
	}
	return
}

// FetchAttemptsIDs returns the "fetch_attempts" edge IDs in the mutation.
func (m *SourceMutation) FetchAttemptsIDs() (ids []int) {
	for id := range m.fetch_attempts {
		ids = append(ids, id)
	}
	return
}

// ResetFetchAttempts resets all changes to the "fetch_attempts" edge.
func (m *SourceMutation) ResetFetchAttempts() {
	m.fetch_attempts = nil
	m.clearedfetch_attempts = false
	m.removedfetch_attempts = nil
}

// AddDocumentIDs adds the "documents" edge to the Document entity by ids.
func (m *SourceMutation) AddDocumentIDs(ids ...int) {
	if m.documents == nil {
		m.documents = make(map[int]struct{})
	}
	for i := range ids {
		m.documents[ids[i]] = struct{}{}
	}
}

// ClearDocuments clears the "documents" edge to the Document entity.
func (m *SourceMutation) ClearDocuments() {
	m.cleareddocuments = true
}

// DocumentsCleared reports if the "documents" edge to the Document entity was cleared.
func (m *SourceMutation) DocumentsCleared() bool {
	return m.cleareddocuments
}

// RemoveDocumentIDs removes the "documents" edge to the Document entity by IDs.
func (m *SourceMutation) RemoveDocumentIDs(ids ...int) {
	if m.removeddocuments == nil {
		m.removeddocuments = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.documents, ids[i])
		m.removeddocuments[ids[i]] = struct{}{}
	}
}

// RemovedDocuments returns the removed IDs of the "documents" edge to the Document entity.
func (m *SourceMutation) RemovedDocumentsIDs() (ids []int) {
	for id := range m.removeddocuments {
		ids = append(ids, id)
	}
	return
}

// DocumentsIDs returns the "documents" edge IDs in the mutation.
func (m *SourceMutation) DocumentsIDs() (ids []int) {
	for id := range m.documents {
		ids = append(ids, id)
	}
	return
}

// ResetDocuments resets all changes to the "documents" edge.
func (m *SourceMutation) ResetDocuments() {
	m.documents = nil
	m.cleareddocuments = false
	m.removeddocuments = nil
}

// Where appends a list predicates to the SourceMutation builder.
func (m *SourceMutation) Where(ps ...predicate.Source) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the SourceMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *SourceMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Source, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *SourceMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *SourceMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Source).
func (m *SourceMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *SourceMutation) Fields() []string {
	fields := make([]string, 0, 11)
	if m.domain != nil {
		fields = append(fields, source.FieldDomain)
	}
	if m.name != nil {
		fields = append(fields, source.FieldName)
	}
	if m.tier != nil {
		fields = append(fields, source.FieldTier)
	}
	if m.is_official != nil {
		fields = append(fields, source.FieldIsOfficial)
	}
	if m.language != nil {
		fields = append(fields, source.FieldLanguage)
	}
	if m.enabled != nil {
		fields = append(fields, source.FieldEnabled)
	}
	if m.profile != nil {
		fields = append(fields, source.FieldProfile)
	}
	if m.source_class != nil {
		fields = append(fields, source.FieldSourceClass)
	}
	if m.editorial_group != nil {
		fields = append(fields, source.FieldEditorialGroup)
	}
	if m.created_at != nil {
		fields = append(fields, source.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, source.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *SourceMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case source.FieldDomain:
		return m.Domain()
	case source.FieldName:
		return m.Name()
	case source.FieldTier:
		return m.Tier()
	case source.FieldIsOfficial:
		return m.IsOfficial()
	case source.FieldLanguage:
		return m.Language()
	case source.FieldEnabled:
		return m.Enabled()
	case source.FieldProfile:
		return m.Profile()
	case source.FieldSourceClass:
		return m.SourceClass()
	case source.FieldEditorialGroup:
		return m.EditorialGroup()
	case source.FieldCreatedAt:
		return m.CreatedAt()
	case source.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *SourceMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case source.FieldDomain:
		return m.OldDomain(ctx)
	case source.FieldName:
		return m.OldName(ctx)
	case source.FieldTier:
		return m.OldTier(ctx)
	case source.FieldIsOfficial:
		return m.OldIsOfficial(ctx)
	case source.FieldLanguage:
		return m.OldLanguage(ctx)
	case source.FieldEnabled:
		return m.OldEnabled(ctx)
	case source.FieldProfile:
		return m.OldProfile(ctx)
	case source.FieldSourceClass:
		return m.OldSourceClass(ctx)
	case source.FieldEditorialGroup:
		return m.OldEditorialGroup(ctx)
	case source.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case source.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Source field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SourceMutation) SetField(name string, value ent.Value) error {
	switch name {
	case source.FieldDomain:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDomain(v)
		return nil
	case source.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case source.FieldTier:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTier(v)
		return nil
	case source.FieldIsOfficial:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsOfficial(v)
		return nil
	case source.FieldLanguage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLanguage(v)
		return nil
	case source.FieldEnabled:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEnabled(v)
		return nil
	case source.FieldProfile:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProfile(v)
		return nil
	case source.FieldSourceClass:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSourceClass(v)
		return nil
	case source.FieldEditorialGroup:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEditorialGroup(v)
		return nil
	case source.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case source.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Source field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *SourceMutation) AddedFields() []string {
	var fields []string
	if m.addtier != nil {
		fields = append(fields, source.FieldTier)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *SourceMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case source.FieldTier:
		return m.AddedTier()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SourceMutation) AddField(name string, value ent.Value) error {
	switch name {
	case source.FieldTier:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTier(v)
		return nil
	}
	return fmt.Errorf("unknown Source numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *SourceMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(source.FieldSourceClass) {
		fields = append(fields, source.FieldSourceClass)
	}
	if m.FieldCleared(source.FieldEditorialGroup) {
		fields = append(fields, source.FieldEditorialGroup)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *SourceMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *SourceMutation) ClearField(name string) error {
	switch name {
	case source.FieldSourceClass:
		m.ClearSourceClass()
		return nil
	case source.FieldEditorialGroup:
		m.ClearEditorialGroup()
		return nil
	}
	return fmt.Errorf("unknown Source nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *SourceMutation) ResetField(name string) error {
	switch name {
	case source.FieldDomain:
		m.ResetDomain()
		return nil
	case source.FieldName:
		m.ResetName()
		return nil
	case source.FieldTier:
		m.ResetTier()
		return nil
	case source.FieldIsOfficial:
		m.ResetIsOfficial()
		return nil
	case source.FieldLanguage:
		m.ResetLanguage()
		return nil
	case source.FieldEnabled:
		m.ResetEnabled()
		return nil
	case source.FieldProfile:
		m.ResetProfile()
		return nil
	case source.FieldSourceClass:
		m.ResetSourceClass()
		return nil
	case source.FieldEditorialGroup:
		m.ResetEditorialGroup()
		return nil
	case source.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case source.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Source field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *SourceMutation) AddedEdges() []string {
	edges := make([]string, 0, 3)
	if m.snapshots != nil {
		edges = append(edges, source.EdgeSnapshots)
	}
	if m.fetch_attempts != nil {
		edges = append(edges, source.EdgeFetchAttempts)
	}
	if m.documents != nil {
		edges = append(edges, source.EdgeDocuments)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *SourceMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case source.EdgeSnapshots:
		ids := make([]ent.Value, 0, len(m.snapshots))
		for id := range m.snapshots {
			ids = append(ids, id)
		}
		return ids
	case source.EdgeFetchAttempts:
		ids := make([]ent.Value, 0, len(m.fetch_attempts))
		for id := range m.fetch_attempts {
			ids = append(ids, id)
		}
		return ids
	case source.EdgeDocuments:
		ids := make([]ent.Value, 0, len(m.documents))
		for id := range m.documents {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *SourceMutation) RemovedEdges() []string {
	edges := make([]string, 0, 3)
	if m.removedsnapshots != nil {
		edges = append(edges, source.EdgeSnapshots)
	}
	if m.removedfetch_attempts != nil {
		edges = append(edges, source.EdgeFetchAttempts)
	}
	if m.removeddocuments != nil {
		edges = append(edges, source.EdgeDocuments)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *SourceMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case source.EdgeSnapshots:
		ids := make([]ent.Value, 0, len(m.removedsnapshots))
		for id := range m.removedsnapshots {
			ids = append(ids, id)
		}
		return ids
	case source.EdgeFetchAttempts:
		ids := make([]ent.Value, 0, len(m.removedfetch_attempts))
		for id := range m.removedfetch_attempts {
			ids = append(ids, id)
		}
		return ids
	case source.EdgeDocuments:
		ids := make([]ent.Value, 0, len(m.removeddocuments))
		for id := range m.removeddocuments {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *SourceMutation) ClearedEdges() []string {
	edges := make([]string, 0, 3)
	if m.clearedsnapshots {
		edges = append(edges, source.EdgeSnapshots)
	}
	if m.clearedfetch_attempts {
		edges = append(edges, source.EdgeFetchAttempts)
	}
	if m.cleareddocuments {
		edges = append(edges, source.EdgeDocuments)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *SourceMutation) EdgeCleared(name string) bool {
	switch name {
	case source.EdgeSnapshots:
		return m.clearedsnapshots
	case source.EdgeFetchAttempts:
		return m.clearedfetch_attempts
	case source.EdgeDocuments:
		return m.cleareddocuments
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *SourceMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Source unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *SourceMutation) ResetEdge(name string) error {
	switch name {
	case source.EdgeSnapshots:
		m.ResetSnapshots()
		return nil
	case source.EdgeFetchAttempts:
		m.ResetFetchAttempts()
		return nil
	case source.EdgeDocuments:
		m.ResetDocuments()
		return nil
	}
	return fmt.Errorf("unknown Source edge %s", name)
}
