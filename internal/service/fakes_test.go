package service

import (
	"context"
	"sort"

	"koperasi-portal/internal/model"
	"koperasi-portal/internal/repository"

	"gorm.io/gorm"
)

type fakeMemberRepo struct {
	members map[int]*model.Member
	err     error
}

func (f *fakeMemberRepo) FindByID(_ context.Context, id int) (*model.Member, error) {
	if f.err != nil {
		return nil, f.err
	}
	m, ok := f.members[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *m
	return &copied, nil
}

func (f *fakeMemberRepo) FindByMemberNumber(_ context.Context, number string) (*model.Member, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, m := range f.members {
		if m.MemberNumber == number {
			copied := *m
			return &copied, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeMemberRepo) Create(_ context.Context, m *model.Member) error {
	if f.members == nil {
		f.members = map[int]*model.Member{}
	}
	m.ID = len(f.members) + 1
	f.members[m.ID] = m
	return nil
}

func (f *fakeMemberRepo) UpdatePinHash(_ context.Context, id int, hash string) error {
	f.members[id].PinHash = hash
	return nil
}

// fakeSavingsRepo groups raw rows the way the SQL GROUP BY does
type fakeSavingsRepo struct {
	rows []model.Savings
	err  error
}

func (f *fakeSavingsRepo) SumByType(_ context.Context, memberID int) ([]model.SavingsBreakdown, error) {
	if f.err != nil {
		return nil, f.err
	}
	sums := map[model.SavingsType]model.Amount{}
	for _, r := range f.rows {
		if r.MemberID != memberID {
			continue
		}
		sums[r.Type] = sums[r.Type].Add(r.Amount)
	}
	out := make([]model.SavingsBreakdown, 0, len(sums))
	for t, a := range sums {
		out = append(out, model.SavingsBreakdown{Type: t, Amount: a})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Type < out[j].Type })
	return out, nil
}

func (f *fakeSavingsRepo) Create(_ context.Context, s *model.Savings) error {
	f.rows = append(f.rows, *s)
	return nil
}

type fakeLoanRepo struct {
	loans []model.Loan
	err   error
}

func (f *fakeLoanRepo) FindByMember(_ context.Context, memberID int) ([]model.Loan, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := make([]model.Loan, 0)
	for _, l := range f.loans {
		if l.MemberID == memberID {
			out = append(out, l)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (f *fakeLoanRepo) Create(_ context.Context, l *model.Loan) error {
	f.loans = append(f.loans, *l)
	return nil
}

type fakeTransactionRepo struct {
	txs      []model.Transaction
	err      error
	lastPage repository.Page
}

func (f *fakeTransactionRepo) FindByMember(_ context.Context, memberID int, page repository.Page) ([]model.Transaction, error) {
	f.lastPage = page
	if f.err != nil {
		return nil, f.err
	}
	out := make([]model.Transaction, 0)
	for _, tx := range f.txs {
		if tx.MemberID == memberID {
			out = append(out, tx)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return window(out, page), nil
}

func (f *fakeTransactionRepo) Create(_ context.Context, tx *model.Transaction) error {
	f.txs = append(f.txs, *tx)
	return nil
}

// fakeNotificationRepo applies MarkRead as one conditional update over its rows
type fakeNotificationRepo struct {
	items []model.Notification
	err   error
}

func (f *fakeNotificationRepo) FindByMember(_ context.Context, memberID int, page repository.Page) ([]model.Notification, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := make([]model.Notification, 0)
	for _, n := range f.items {
		if n.MemberID == memberID {
			out = append(out, n)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return window(out, page), nil
}

func (f *fakeNotificationRepo) CountUnread(_ context.Context, memberID int) (int64, error) {
	if f.err != nil {
		return 0, f.err
	}
	var n int64
	for _, item := range f.items {
		if item.MemberID == memberID && !item.IsRead {
			n++
		}
	}
	return n, nil
}

func (f *fakeNotificationRepo) MarkRead(_ context.Context, id, memberID int) (bool, error) {
	if f.err != nil {
		return false, f.err
	}
	updated := 0
	for i := range f.items {
		if f.items[i].ID == id && f.items[i].MemberID == memberID {
			f.items[i].IsRead = true
			updated++
		}
	}
	return updated == 1, nil
}

func (f *fakeNotificationRepo) Create(_ context.Context, n *model.Notification) error {
	f.items = append(f.items, *n)
	return nil
}

func window[T any](rows []T, page repository.Page) []T {
	if page.Offset >= len(rows) {
		return []T{}
	}
	end := page.Offset + page.Limit
	if end > len(rows) {
		end = len(rows)
	}
	return rows[page.Offset:end]
}
