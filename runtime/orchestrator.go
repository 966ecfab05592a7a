package runtime

import (
	"chat-engine/ai"
	"chat-engine/contract"
	"chat-engine/domain"
	"chat-engine/errors"
	"chat-engine/repositories"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"sort"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	stderrors "errors"

	"golang.org/x/sync/singleflight"
)

const (
	DefaultNetworkThreshold  = 0.7
	DefaultResponseThreshold = 0.5
	DefaultApology           = "Sorry, something went wrong. Please try again."

	trainKey = "train"
	loadKey  = "load"
)

var DefaultEmpathyPrefixes = []string{
	"I understand how you feel. ",
	"I can see you're not happy. ",
	"I'm sorry about that. ",
}

type Options struct {
	NetworkThreshold  float64
	ResponseThreshold float64
	Network           ai.NetworkOptions
	EmpathyPrefixes   []string
	FallbackReply     string
	ApologyReply      string
	// Seed makes weight initialisation and every random pick reproducible.
	Seed *uint64
}

func DefaultOptions() Options {
	return Options{
		NetworkThreshold:  DefaultNetworkThreshold,
		ResponseThreshold: DefaultResponseThreshold,
		Network:           ai.DefaultNetworkOptions(),
		EmpathyPrefixes:   DefaultEmpathyPrefixes,
		FallbackReply:     ai.DefaultFallback,
		ApologyReply:      DefaultApology,
	}
}

// Status is where the orchestrator stands in the model lifecycle.
type Status int32

const (
	StatusUntrained Status = iota
	StatusTraining
	StatusTrained
)

func (s Status) String() string {
	switch s {
	case StatusTraining:
		return "training"
	case StatusTrained:
		return "trained"
	default:
		return "untrained"
	}
}

// engineModel is an immutable snapshot of everything inference reads.
type engineModel struct {
	network    *ai.Network
	classifier *ai.BayesClassifier
	responses  map[string][]string
	vocabulary []string
	tiers      []ai.Tier
}

// Orchestrator owns the model lifecycle and composes a reply for every turn.
// Turns only read the current model snapshot, a training run swaps in a new one
// when it completes.
type Orchestrator struct {
	log        *slog.Logger
	store      *repositories.ConversationStore
	data       contract.TrainingDataSource
	models     contract.ModelStore
	analyzer   contract.TextAnalyzer
	archive    contract.MessageArchive
	vectorizer *ai.Vectorizer
	selector   ai.Selector
	choose     ai.Chooser
	opts       Options
	now        func() time.Time

	model     atomic.Pointer[engineModel]
	status    atomic.Int32
	flight    singleflight.Group
	lifecycle sync.Mutex
}

// NewOrchestrator wires the engine. archive may be nil when no archive is configured.
func NewOrchestrator(log *slog.Logger, store *repositories.ConversationStore,
	data contract.TrainingDataSource, models contract.ModelStore,
	analyzer contract.TextAnalyzer, archive contract.MessageArchive, opts Options) *Orchestrator {
	choose := ai.NewChooser(opts.Seed)
	if opts.ApologyReply == "" {
		opts.ApologyReply = DefaultApology
	}
	return &Orchestrator{
		log:        log,
		store:      store,
		data:       data,
		models:     models,
		analyzer:   analyzer,
		archive:    archive,
		vectorizer: ai.NewVectorizer(ai.VectorSize),
		selector:   ai.NewSelector(opts.ResponseThreshold, opts.FallbackReply, choose),
		choose:     choose,
		opts:       opts,
		now:        time.Now,
	}
}

// WithClock replaces the clock stamping messages.
func (o *Orchestrator) WithClock(now func() time.Time) *Orchestrator {
	o.now = now
	return o
}

func (o *Orchestrator) Status() Status {
	return Status(o.status.Load())
}

// Responses returns a copy of the responses of the current model.
func (o *Orchestrator) Responses() map[string][]string {
	m := o.model.Load()
	if m == nil {
		return map[string][]string{}
	}
	out := make(map[string][]string, len(m.responses))
	for tag, responses := range m.responses {
		out[tag] = append([]string{}, responses...)
	}
	return out
}

// Vocabulary returns the sorted tokens of the current model.
func (o *Orchestrator) Vocabulary() []string {
	m := o.model.Load()
	if m == nil {
		return []string{}
	}
	return append([]string{}, m.vocabulary...)
}

// Probe returns the raw network activations for text, nil before any model exists.
func (o *Orchestrator) Probe(text string) map[string]float64 {
	m := o.model.Load()
	if m == nil {
		return nil
	}
	return m.network.Run(o.vectorizer.Features(text))
}

// Train rebuilds the model from the training data, installs it and saves it.
// Calls made while a run is in flight join that run and share its result.
// The returned error wraps ErrTraining when the corpus had no usable example;
// the empty model is installed anyway.
func (o *Orchestrator) Train(ctx context.Context) error {
	return o.do(ctx, trainKey, func() error {
		o.lifecycle.Lock()
		defer o.lifecycle.Unlock()
		return o.train()
	})
}

// LoadModel installs the persisted model, training a new one when it cannot be loaded.
func (o *Orchestrator) LoadModel(ctx context.Context) error {
	return o.do(ctx, loadKey, func() error {
		o.lifecycle.Lock()
		defer o.lifecycle.Unlock()
		return o.load()
	})
}

func (o *Orchestrator) do(ctx context.Context, key string, fn func() error) error {
	ch := o.flight.DoChan(key, func() (any, error) {
		return nil, fn()
	})
	select {
	case <-ctx.Done():
		return ctx.Err()
	case res := <-ch:
		return res.Err
	}
}

func (o *Orchestrator) load() error {
	persisted, err := o.models.Load()
	if err == nil {
		var model *engineModel
		if model, err = o.restore(persisted); err == nil {
			o.install(model)
			o.log.Info("Model loaded", "tags", len(model.responses), "vocabulary", len(model.vocabulary))
			return nil
		}
	}
	o.log.Warn("No usable model, training a new one", "error", err)
	return o.train()
}

func (o *Orchestrator) train() error {
	start := time.Now()
	o.status.Store(int32(StatusTraining))

	data, err := o.data.Load()
	if err != nil {
		o.log.Warn("Training on partial data", "error", err)
	}

	model, stats, trainErr := o.build(data)
	o.install(model)
	if trainErr != nil {
		o.log.Warn("Model trained without examples", "error", trainErr)
	}
	o.log.Info("Model trained",
		"iterations", stats.Iterations,
		"error", stats.Error,
		"tags", len(model.responses),
		"vocabulary", len(model.vocabulary),
		"duration", time.Since(start))

	if err := o.save(model); err != nil {
		o.log.Error("Model kept in memory only", "error", err)
	}
	return trainErr
}

// build follows the corpus order: the first intent defining a tag owns its
// responses, and every QA answer becomes a qa_response reply.
func (o *Orchestrator) build(data domain.TrainingData) (*engineModel, ai.TrainingStats, error) {
	var samples []ai.Sample
	classifier := ai.NewBayesClassifier()
	responses := make(map[string][]string)
	vocabulary := make(map[string]struct{})

	addSample := func(text, tag string) {
		tokens := ai.Preprocess(text)
		for _, t := range tokens {
			vocabulary[t] = struct{}{}
		}
		samples = append(samples, ai.Sample{Input: o.vectorizer.Encode(tokens), Tag: tag})
	}

	for _, intent := range data.Intents {
		for _, pattern := range intent.Patterns {
			addSample(pattern, intent.Tag)
			classifier.AddDocument(pattern, intent.Tag)
			if _, ok := responses[intent.Tag]; !ok {
				responses[intent.Tag] = append([]string{}, intent.Responses...)
			}
		}
	}
	for _, pair := range data.QAPairs {
		addSample(pair.Question, domain.QAResponseTag)
		responses[domain.QAResponseTag] = append(responses[domain.QAResponseTag], pair.Answer)
	}

	network, stats, err := ai.TrainNetwork(o.log, samples, o.opts.Network, o.rng())
	classifier.Train()

	words := make([]string, 0, len(vocabulary))
	for w := range vocabulary {
		words = append(words, w)
	}
	sort.Strings(words)

	return o.assemble(network, classifier, responses, words), stats, err
}

func (o *Orchestrator) assemble(network *ai.Network, classifier *ai.BayesClassifier,
	responses map[string][]string, vocabulary []string) *engineModel {
	return &engineModel{
		network:    network,
		classifier: classifier,
		responses:  responses,
		vocabulary: vocabulary,
		tiers: []ai.Tier{
			{Strategy: network, Threshold: o.opts.NetworkThreshold},
			{Strategy: classifier, Threshold: 0},
		},
	}
}

func (o *Orchestrator) rng() *rand.Rand {
	if o.opts.Seed != nil {
		return rand.New(rand.NewPCG(*o.opts.Seed, *o.opts.Seed))
	}
	return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
}

func (o *Orchestrator) install(model *engineModel) {
	o.model.Store(model)
	o.status.Store(int32(StatusTrained))
}

func (o *Orchestrator) save(model *engineModel) error {
	network, err := json.Marshal(model.network)
	if err != nil {
		return fmt.Errorf("%w: %v", errors.ErrPersistence, err)
	}
	classifier, err := json.Marshal(model.classifier)
	if err != nil {
		return fmt.Errorf("%w: %v", errors.ErrPersistence, err)
	}
	return o.models.Save(domain.TrainedModel{
		Network:    network,
		Responses:  model.responses,
		Vocabulary: model.vocabulary,
		Classifier: classifier,
	})
}

// restore rebuilds the snapshot of a persisted model. Files without a
// classifier get an empty one.
func (o *Orchestrator) restore(persisted domain.TrainedModel) (*engineModel, error) {
	network := &ai.Network{}
	if err := json.Unmarshal(persisted.Network, network); err != nil {
		return nil, fmt.Errorf("%w: network: %v", errors.ErrModelLoad, err)
	}
	classifier := ai.NewBayesClassifier()
	if len(persisted.Classifier) > 0 && string(persisted.Classifier) != "null" {
		if err := json.Unmarshal(persisted.Classifier, classifier); err != nil {
			return nil, fmt.Errorf("%w: classifier: %v", errors.ErrModelLoad, err)
		}
	}
	vocabulary := persisted.Vocabulary
	if vocabulary == nil {
		vocabulary = []string{}
	}
	return o.assemble(network, classifier, persisted.Responses, vocabulary), nil
}

// ProcessMessage runs one turn for the room. It never fails: any error or
// panic of the pipeline is turned into the apology reply, and then only the
// user message stays in the history.
func (o *Orchestrator) ProcessMessage(ctx context.Context, text, userID string, roomID domain.RoomID, timestamp int64) domain.Reply {
	unlock := o.store.LockRoom(roomID)
	defer unlock()

	if timestamp == 0 {
		timestamp = o.now().UnixMilli()
	}
	o.store.Append(roomID, domain.ConversationMessage{
		Role:      domain.RoleUser,
		Message:   text,
		Timestamp: timestamp,
	})

	reply, err := o.respond(ctx, text)
	if err != nil {
		o.log.Error("Turn failed", "room", roomID, "user", userID, "error", err)
		return domain.Reply{
			Role:      domain.RoleAssistant,
			Message:   o.opts.ApologyReply,
			Timestamp: o.now().UnixMilli(),
			RoomID:    roomID,
			UserID:    userID,
			Error:     true,
		}
	}
	reply.RoomID = roomID
	reply.UserID = userID

	message := reply.ToMessage()
	o.store.Append(roomID, message)
	if o.archive != nil {
		if err := o.archive.StoreMessage(roomID, message); err != nil {
			o.log.Warn("Message not archived", "room", roomID, "error", err)
		}
	}
	return reply
}

func (o *Orchestrator) respond(ctx context.Context, text string) (reply domain.Reply, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %w: %v", errors.ErrProcessing, errors.ErrWorkerPanic, r)
		}
	}()

	model, err := o.ensureModel(ctx)
	if err != nil {
		return domain.Reply{}, fmt.Errorf("%w: %w", errors.ErrProcessing, err)
	}

	prediction := ai.Resolve(model.tiers, text, o.vectorizer.Features(text))
	result := o.selector.Select(prediction, model.responses)

	analysis, err := o.analyzer.Analyze(text)
	if err != nil {
		return domain.Reply{}, fmt.Errorf("%w: %w", errors.ErrProcessing, err)
	}

	message := result.Text
	if analysis.Sentiment == domain.SentimentNegative {
		if prefix, ok := ai.Pick(o.choose, o.opts.EmpathyPrefixes); ok {
			message = prefix + message
		}
	}

	o.log.Debug("Turn resolved",
		"intent", result.Intent,
		"source", prediction.Source,
		"score", prediction.Score,
		"sentiment", analysis.Sentiment)

	return domain.Reply{
		Role:       domain.RoleAssistant,
		Message:    message,
		Timestamp:  o.now().UnixMilli(),
		Confidence: result.Confidence,
		Intent:     result.Intent,
		Analysis:   &analysis,
	}, nil
}

// ensureModel waits for a first model when none is installed yet.
func (o *Orchestrator) ensureModel(ctx context.Context) (*engineModel, error) {
	if m := o.model.Load(); m != nil {
		return m, nil
	}
	if err := o.LoadModel(ctx); err != nil && !stderrors.Is(err, errors.ErrTraining) {
		return nil, err
	}
	m := o.model.Load()
	if m == nil {
		return nil, errors.ErrModelLoad
	}
	return m, nil
}

// GetConversationHistory returns the room messages oldest first.
func (o *Orchestrator) GetConversationHistory(roomID domain.RoomID) []domain.ConversationMessage {
	return o.store.Get(roomID)
}

func (o *Orchestrator) ClearConversationHistory(roomID domain.RoomID) {
	o.store.Clear(roomID)
	o.log.Debug("Conversation cleared", "room", roomID)
}

// NormalizePrefixes makes every empathy prefix end with a single space.
func NormalizePrefixes(prefixes []string) []string {
	out := make([]string, 0, len(prefixes))
	for _, p := range prefixes {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		out = append(out, p+" ")
	}
	return out
}
