package models

import (
	"context"
	"sort"

	"github.com/cibdesk/interlinkages_backend/config"
	"github.com/cibdesk/interlinkages_backend/utils"
)

const (
	ExposuresModeNone   = "none"
	ExposuresModeLatest = "latest"
	ExposuresModeLastN  = "last_n"
)

func ValidExposuresMode(mode string) bool {
	switch mode {
	case ExposuresModeNone, ExposuresModeLatest, ExposuresModeLastN:
		return true
	}
	return false
}

type exposurePair struct {
	ID             int
	InterlinkageId int
	AsOfDate       Date
}

// keep at most n dates per interlinkage, walking pairs already ordered
// by (interlinkage_id, as_of_date desc)
func retainLastN(pairs []exposurePair, n int) []exposurePair {
	retained := make([]exposurePair, 0, len(pairs))
	countPerIl := make(map[int]int)
	for _, p := range pairs {
		if countPerIl[p.InterlinkageId] < n {
			retained = append(retained, p)
			countPerIl[p.InterlinkageId]++
		}
	}
	return retained
}

// ResolveExposures returns the exposure snapshot rows for the scope per
// mode: none is unconditionally empty, latest keeps the max-as_of_date
// row per interlinkage, last_n keeps the n most recent rows per
// interlinkage. An interlinkage without snapshots contributes nothing.
func ResolveExposures(ctx context.Context, ilIDs []int, mode string, n int) ([]*ExposureSnapshot, error) {

	rows := []*ExposureSnapshot{}
	if mode == ExposuresModeNone || len(ilIDs) == 0 {
		return rows, nil
	}

	db := config.GetDB()

	switch mode {
	case ExposuresModeLatest:
		sub := db.Model(&ExposureSnapshot{}).
			Select("interlinkage_id, MAX(as_of_date) AS max_d").
			Where("interlinkage_id IN ?", ilIDs).
			Where("is_deleted = ?", false).
			Group("interlinkage_id")
		err := db.WithContext(ctx).
			Joins("JOIN (?) AS latest ON exposure_snapshots.interlinkage_id = latest.interlinkage_id AND exposure_snapshots.as_of_date = latest.max_d", sub).
			Where("exposure_snapshots.is_deleted = ?", false).
			Order("exposure_snapshots.interlinkage_id").
			Find(&rows).Error
		if err != nil {
			return nil, err
		}
		return rows, nil

	case ExposuresModeLastN:
		// portable group-wise top-N: fetch slim (id, il, date) rows
		// ordered per interlinkage, walk once with a per-id counter,
		// then fetch the retained rows by primary id
		var pairs []exposurePair
		err := db.WithContext(ctx).Model(&ExposureSnapshot{}).
			Select("id, interlinkage_id, as_of_date").
			Where("interlinkage_id IN ?", ilIDs).
			Where("is_deleted = ?", false).
			Order("interlinkage_id, as_of_date DESC").
			Scan(&pairs).Error
		if err != nil {
			return nil, err
		}

		wanted := retainLastN(pairs, n)
		if len(wanted) == 0 {
			return rows, nil
		}
		ids := make([]int, 0, len(wanted))
		for _, p := range wanted {
			ids = append(ids, p.ID)
		}

		rows, err = utils.FetchModelsByIds[ExposureSnapshot](ctx, ids)
		if err != nil {
			return nil, err
		}
		sort.Slice(rows, func(i, j int) bool {
			if rows[i].InterlinkageId != rows[j].InterlinkageId {
				return rows[i].InterlinkageId < rows[j].InterlinkageId
			}
			return rows[j].AsOfDate.Before(rows[i].AsOfDate)
		})
		return rows, nil
	}

	return rows, nil
}

// LatestExposureByInterlinkage maps each interlinkage id in scope to its
// most recent snapshot.
func LatestExposureByInterlinkage(ctx context.Context, ilIDs []int) (map[int]*ExposureSnapshot, error) {
	rows, err := ResolveExposures(ctx, ilIDs, ExposuresModeLatest, 0)
	if err != nil {
		return nil, err
	}
	latest := make(map[int]*ExposureSnapshot, len(rows))
	for _, row := range rows {
		latest[row.InterlinkageId] = row
	}
	return latest, nil
}
