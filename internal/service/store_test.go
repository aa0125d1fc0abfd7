package service

import (
	"context"
	"fmt"
	"maps"
	"slices"
	"sync"

	"github.com/aidar/issue-tracker/internal/domain"
)

// memStore is an in-memory implementation of the repositories used by service tests.
// Operations are recorded in calls; an error registered in failures under
// "<Op>" or "<Op>:<id>" is returned instead of executing the operation.
type memStore struct {
	mu       sync.Mutex
	users    map[string]*domain.User
	orgs     map[string]*domain.Organization
	orgOrder []string
	issues   map[string]*domain.Issue
	calls    []string
	failures map[string]error
	txCount  int
}

func newMemStore() *memStore {
	return &memStore{
		users:    map[string]*domain.User{},
		orgs:     map[string]*domain.Organization{},
		issues:   map[string]*domain.Issue{},
		failures: map[string]error{},
	}
}

func (m *memStore) record(op, id string) error {
	m.calls = append(m.calls, op+":"+id)
	if err, ok := m.failures[op+":"+id]; ok {
		return err
	}
	if err, ok := m.failures[op]; ok {
		return err
	}
	return nil
}

func (m *memStore) addUser(id string) *domain.User {
	u := &domain.User{ID: id, Email: id + "@example.com", Name: id}
	m.users[id] = u
	return u
}

func (m *memStore) addOrg(id, ownerID string, members ...string) *domain.Organization {
	o := &domain.Organization{ID: id, Name: id, OwnerID: ownerID, MemberIDs: members}
	m.orgs[id] = o
	m.orgOrder = append(m.orgOrder, id)
	return o
}

func (m *memStore) addIssue(id, orgID string) *domain.Issue {
	i := &domain.Issue{ID: id, OrganizationID: orgID, Title: id, Status: domain.IssueOpen}
	m.issues[id] = i
	return i
}

func (m *memStore) issuesOf(orgID string) []*domain.Issue {
	var out []*domain.Issue
	for _, i := range m.issues {
		if i.OrganizationID == orgID {
			out = append(out, i)
		}
	}
	return out
}

func cloneOrg(o *domain.Organization) *domain.Organization {
	c := *o
	c.MemberIDs = slices.Clone(o.MemberIDs)
	return &c
}

// users

type memUsers struct{ *memStore }

func (r memUsers) Create(_ context.Context, user *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.record("CreateUser", user.ID); err != nil {
		return err
	}
	for _, u := range r.users {
		if u.Email == user.Email {
			return domain.ErrEmailTaken
		}
	}
	c := *user
	r.users[user.ID] = &c
	return nil
}

func (r memUsers) GetByID(_ context.Context, userID string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.record("GetUser", userID); err != nil {
		return nil, err
	}
	u, ok := r.users[userID]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	c := *u
	return &c, nil
}

func (r memUsers) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == email {
			c := *u
			return &c, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r memUsers) Delete(_ context.Context, userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.record("DeleteUser", userID); err != nil {
		return err
	}
	delete(r.users, userID)
	return nil
}

func (r memUsers) Count(context.Context) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.record("CountUsers", ""); err != nil {
		return 0, err
	}
	return len(r.users), nil
}

// organizations

type memOrgs struct{ *memStore }

func (r memOrgs) Create(_ context.Context, org *domain.Organization) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.record("CreateOrganization", org.ID); err != nil {
		return err
	}
	r.orgs[org.ID] = cloneOrg(org)
	r.orgOrder = append(r.orgOrder, org.ID)
	return nil
}

func (r memOrgs) GetByID(_ context.Context, orgID string) (*domain.Organization, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	o, ok := r.orgs[orgID]
	if !ok {
		return nil, domain.ErrOrganizationNotFound
	}
	return cloneOrg(o), nil
}

func (r memOrgs) ListByOwner(_ context.Context, ownerID string) ([]*domain.Organization, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.record("ListByOwner", ownerID); err != nil {
		return nil, err
	}
	out := []*domain.Organization{}
	for _, id := range r.orgOrder {
		if o, ok := r.orgs[id]; ok && o.OwnerID == ownerID {
			out = append(out, cloneOrg(o))
		}
	}
	return out, nil
}

func (r memOrgs) ListForMember(_ context.Context, userID string) ([]*domain.Organization, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []*domain.Organization{}
	for _, id := range r.orgOrder {
		if o, ok := r.orgs[id]; ok && o.CanView(userID) {
			out = append(out, cloneOrg(o))
		}
	}
	return out, nil
}

func (r memOrgs) Delete(_ context.Context, orgID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.record("DeleteOrganization", orgID); err != nil {
		return err
	}
	delete(r.orgs, orgID)
	return nil
}

func (r memOrgs) AddMember(_ context.Context, orgID, userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.record("AddMember", orgID); err != nil {
		return err
	}
	o, ok := r.orgs[orgID]
	if !ok {
		return domain.ErrNotFound
	}
	if o.HasMember(userID) {
		return domain.ErrAlreadyMember
	}
	o.MemberIDs = append(o.MemberIDs, userID)
	return nil
}

func (r memOrgs) RemoveMember(_ context.Context, orgID, userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.record("RemoveMember", orgID); err != nil {
		return err
	}
	o, ok := r.orgs[orgID]
	if !ok || !o.HasMember(userID) {
		return domain.ErrNotFound
	}
	o.MemberIDs = slices.DeleteFunc(o.MemberIDs, func(id string) bool { return id == userID })
	return nil
}

func (r memOrgs) PullMember(_ context.Context, userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.record("PullMember", userID); err != nil {
		return err
	}
	for _, o := range r.orgs {
		o.MemberIDs = slices.DeleteFunc(o.MemberIDs, func(id string) bool { return id == userID })
	}
	return nil
}

func (r memOrgs) Count(context.Context) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.record("CountOrganizations", ""); err != nil {
		return 0, err
	}
	return len(r.orgs), nil
}

// issues

type memIssues struct{ *memStore }

func (r memIssues) Create(_ context.Context, issue *domain.Issue) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.record("CreateIssue", issue.ID); err != nil {
		return err
	}
	if _, ok := r.orgs[issue.OrganizationID]; !ok {
		return domain.ErrOrganizationNotFound
	}
	c := *issue
	r.issues[issue.ID] = &c
	return nil
}

func (r memIssues) GetByID(_ context.Context, issueID string) (*domain.Issue, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	i, ok := r.issues[issueID]
	if !ok {
		return nil, domain.ErrIssueNotFound
	}
	c := *i
	return &c, nil
}

func (r memIssues) ListByOrganization(_ context.Context, orgID string) ([]*domain.Issue, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []*domain.Issue{}
	for _, i := range r.issuesOf(orgID) {
		c := *i
		out = append(out, &c)
	}
	return out, nil
}

func (r memIssues) Close(_ context.Context, issueID string) (*domain.Issue, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.record("CloseIssue", issueID); err != nil {
		return nil, err
	}
	i, ok := r.issues[issueID]
	if !ok {
		return nil, domain.ErrIssueNotFound
	}
	i.Status = domain.IssueClosed
	c := *i
	return &c, nil
}

func (r memIssues) DeleteByOrganization(_ context.Context, orgID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.record("DeleteIssues", orgID); err != nil {
		return err
	}
	for id, i := range r.issues {
		if i.OrganizationID == orgID {
			delete(r.issues, id)
		}
	}
	return nil
}

func (r memIssues) CountByStatus(context.Context) (map[domain.IssueStatus]int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.record("CountIssues", ""); err != nil {
		return nil, err
	}
	counts := map[domain.IssueStatus]int{}
	for _, i := range r.issues {
		counts[i.Status]++
	}
	return counts, nil
}

// memTx restores the store snapshot when fn fails
type memTx struct{ *memStore }

func (t memTx) WithinTx(ctx context.Context, fn func(ctx context.Context) error) error {
	t.mu.Lock()
	t.txCount++
	users := maps.Clone(t.users)
	issues := maps.Clone(t.issues)
	orgs := make(map[string]*domain.Organization, len(t.orgs))
	for id, o := range t.orgs {
		orgs[id] = cloneOrg(o)
	}
	t.mu.Unlock()

	if err := fn(ctx); err != nil {
		t.mu.Lock()
		t.users, t.issues, t.orgs = users, issues, orgs
		t.mu.Unlock()
		return fmt.Errorf("rolled back: %w", err)
	}
	return nil
}
