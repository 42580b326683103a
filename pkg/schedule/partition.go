package schedule

import "time"

// FloorGroup holds the records of one floor bucket inside a time block.
type FloorGroup struct {
	Bucket  FloorBucket
	Records []Record
}

// BlockGroup holds the records of one time block of a day.
//
// When floor buckets apply, Records is ordered by room then start time, Floors
// has one entry per configured bucket (possibly empty) and Unbucketed keeps the
// rooms that matched no bucket. Without buckets both are nil.
type BlockGroup struct {
	Block      TimeBlock
	Records    []Record
	Floors     []FloorGroup
	Unbucketed []Record
}

// Empty reports whether the block has no records.
func (b BlockGroup) Empty() bool {
	return len(b.Records) == 0
}

// DayGroup is every retained record of one calendar date, split into blocks.
type DayGroup struct {
	Date    time.Time
	Records []Record // tabular order
	Blocks  []BlockGroup
	// Unassigned collects records whose start time matched no block. It stays
	// empty for profiles whose blocks tile the whole day.
	Unassigned []Record
}

// Weekday returns the full weekday name of the group date.
func (d DayGroup) Weekday() string {
	return d.Date.Weekday().String()
}

// Block looks up a block group by block name.
func (d DayGroup) Block(name string) (BlockGroup, bool) {
	for _, b := range d.Blocks {
		if b.Block.Name == name {
			return b, true
		}
	}
	return BlockGroup{}, false
}

// Partition sorts a copy of records in tabular order and groups them by date,
// then by time block and, when floors is non-empty, by floor bucket.
// Each record lands in exactly one block (or Unassigned) and at most one floor.
func Partition(records []Record, blocks []TimeBlock, floors []FloorBucket) []DayGroup {
	sorted := make([]Record, len(records))
	copy(sorted, records)
	SortTabular(sorted)

	dayMap := make(map[string]*DayGroup)
	var dayKeys []string // order of first appearance, chronological after sorting

	for _, r := range sorted {
		key := r.DateKey()
		if _, exists := dayMap[key]; !exists {
			dayMap[key] = &DayGroup{Date: r.Date}
			dayKeys = append(dayKeys, key)
		}
		dayMap[key].Records = append(dayMap[key].Records, r)
	}

	result := make([]DayGroup, 0, len(dayKeys))
	for _, key := range dayKeys {
		day := dayMap[key]
		day.Blocks, day.Unassigned = splitBlocks(day.Records, blocks, floors)
		result = append(result, *day)
	}
	return result
}

func splitBlocks(records []Record, blocks []TimeBlock, floors []FloorBucket) ([]BlockGroup, []Record) {
	groups := make([]BlockGroup, len(blocks))
	for i, b := range blocks {
		groups[i].Block = b
	}

	var unassigned []Record
	for _, r := range records {
		placed := false
		for i := range groups {
			if groups[i].Block.Contains(r.Start) {
				groups[i].Records = append(groups[i].Records, r)
				placed = true
				break
			}
		}
		if !placed {
			unassigned = append(unassigned, r)
		}
	}

	if len(floors) > 0 {
		for i := range groups {
			sortRoomStart(groups[i].Records)
			groups[i].Floors, groups[i].Unbucketed = splitFloors(groups[i].Records, floors)
		}
	}
	return groups, unassigned
}

func splitFloors(records []Record, floors []FloorBucket) ([]FloorGroup, []Record) {
	groups := make([]FloorGroup, len(floors))
	for i, f := range floors {
		groups[i].Bucket = f
	}

	var rest []Record
	for _, r := range records {
		placed := false
		for i := range groups {
			if groups[i].Bucket.Contains(r.Room) {
				groups[i].Records = append(groups[i].Records, r)
				placed = true
				break
			}
		}
		if !placed {
			rest = append(rest, r)
		}
	}
	return groups, rest
}
